package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// StockUseCase aplica cambios de cantidad a productos y mantiene su historial (stock_logs).
// Lectura, verificación, actualización e inserción del registro ocurren en una sola transacción
// con la fila del producto bloqueada, de modo que dos descuentos concurrentes no pueden
// dejar la cantidad en negativo.
type StockUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	logRepo      repository.StockLogRepository
	log          *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	logRepo repository.StockLogRepository,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		logRepo:      logRepo,
		log:          log,
	}
}

// ApplyStockChange suma delta a la cantidad del producto y registra el cambio.
// Falla con domain.ErrProductNotFound si el producto no existe, con domain.ErrInsufficientStock
// si la cantidad resultante sería negativa y con domain.ErrQuantityOverflow si supera
// entity.MaxQuantity; en todos los casos no se escribe nada.
func (uc *StockUseCase) ApplyStockChange(ctx context.Context, productID string, delta int, reason string) (*entity.Product, *entity.StockLog, error) {
	if !entity.ValidChange(delta) {
		return nil, nil, changeOutOfRange()
	}
	var (
		product *entity.Product
		entry   *entity.StockLog
	)
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.StockLogRepository) error {
		p, err := productRepo.GetForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductNotFound
		}
		if !p.CanApply(delta) {
			return domain.ErrInsufficientStock
		}
		if p.Overflows(delta) {
			return domain.ErrQuantityOverflow
		}
		p.Quantity += delta
		if err := productRepo.UpdateQuantity(ctx, p.ID, p.Quantity); err != nil {
			return err
		}
		e := newStockLog(p.ID, delta, reason)
		if err := logRepo.Create(ctx, e); err != nil {
			return err
		}
		product, entry = p, e
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("product_id", productID).Int("change", delta).Msg("cambio de stock rechazado")
		return nil, nil, err
	}
	uc.log.Info().
		Str("product_id", product.ID).
		Int("change", delta).
		Int("quantity", product.Quantity).
		Msg("cambio de stock aplicado")
	entry.Product = product
	return product, entry, nil
}

// RecordStockLog registra un cambio en el historial sin tocar la cantidad del producto
// (ni verificar el piso de cero). El producto debe existir.
func (uc *StockUseCase) RecordStockLog(ctx context.Context, productID string, delta int, reason string) (*entity.StockLog, error) {
	if !entity.ValidChange(delta) {
		return nil, changeOutOfRange()
	}
	var entry *entity.StockLog
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, logRepo repository.StockLogRepository) error {
		p, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductNotFound
		}
		e := newStockLog(p.ID, delta, reason)
		if err := logRepo.Create(ctx, e); err != nil {
			return err
		}
		e.Product = p
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("product_id", productID).
		Int("change", delta).
		Msg("registro de stock creado sin ajustar cantidad")
	return entry, nil
}

// ChangeStock adapta POST /products/:id/stock; devuelve el producto con la cantidad nueva.
func (uc *StockUseCase) ChangeStock(ctx context.Context, productID string, in dto.ChangeStockRequest) (*dto.ProductResponse, error) {
	product, _, err := uc.ApplyStockChange(ctx, productID, in.Change, in.Reason)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, product.SupplierID)
	if err != nil {
		return nil, err
	}
	product.Supplier = supplier
	return usecase.ToProductResponse(product), nil
}

// CreateStockLog adapta POST /stock-logs. Con UpdateStock=false solo se registra el historial.
func (uc *StockUseCase) CreateStockLog(ctx context.Context, in dto.CreateStockLogRequest) (*dto.StockLogResponse, error) {
	if !in.ShouldUpdateStock() {
		entry, err := uc.RecordStockLog(ctx, in.ProductID, in.Change, in.Reason)
		if err != nil {
			return nil, err
		}
		return usecase.ToStockLogResponse(entry), nil
	}
	_, entry, err := uc.ApplyStockChange(ctx, in.ProductID, in.Change, in.Reason)
	if err != nil {
		return nil, err
	}
	return usecase.ToStockLogResponse(entry), nil
}

// List lista todo el historial de stock (más reciente primero) con su producto.
func (uc *StockUseCase) List(ctx context.Context) ([]dto.StockLogResponse, error) {
	logs, err := uc.logRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	items := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		l.Product = byID[l.ProductID]
		items = append(items, *usecase.ToStockLogResponse(l))
	}
	return items, nil
}

// ListByProduct lista el historial de un producto ordenado por logged_at descendente.
func (uc *StockUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.StockLogResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	logs, err := uc.logRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		l.Product = product
		items = append(items, *usecase.ToStockLogResponse(l))
	}
	return items, nil
}

func changeOutOfRange() error {
	verr := domain.NewValidationError()
	verr.Add("change", "out_of_range")
	return verr
}

func newStockLog(productID string, delta int, reason string) *entity.StockLog {
	return &entity.StockLog{
		ID:        uuid.New().String(),
		ProductID: productID,
		Change:    delta,
		Reason:    reason,
		LoggedAt:  time.Now().UTC(),
	}
}
