package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/you-humble/autoparts/internal/model"
	"github.com/you-humble/autoparts/platform/logger"
)

type PartRepository interface {
	List(ctx context.Context, filter model.PartsFilter) ([]model.Part, error)
	PartByID(ctx context.Context, id int64) (*model.Part, error)
	PartByCode(ctx context.Context, code string) (*model.Part, error)
	PartByIDForUpdate(ctx context.Context, id int64) (*model.Part, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeExcept(ctx context.Context, code string, id int64) (bool, error)
	Create(ctx context.Context, p *model.Part) (*model.Part, error)
	Update(ctx context.Context, p *model.Part) (*model.Part, error)
	SetStock(ctx context.Context, id int64, stock int) (*model.Part, error)
	Delete(ctx context.Context, id int64) error
	AddMovement(ctx context.Context, m *model.StockMovement) error
	Movements(ctx context.Context, partID int64) ([]model.StockMovement, error)
}

type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	repo           PartRepository
	tx             TxManager
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repo PartRepository,
	tx TxManager,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		tx:             tx,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) List(ctx context.Context) ([]model.Part, error) {
	return svc.list(ctx, "part.service.List", model.PartsFilter{})
}

func (svc *service) SearchByName(ctx context.Context, name string) ([]model.Part, error) {
	return svc.list(ctx, "part.service.SearchByName", model.PartsFilter{NameLike: name})
}

func (svc *service) SearchByBrand(ctx context.Context, brand string) ([]model.Part, error) {
	return svc.list(ctx, "part.service.SearchByBrand", model.PartsFilter{BrandLike: brand})
}

func (svc *service) SearchByCategory(ctx context.Context, category string) ([]model.Part, error) {
	return svc.list(ctx, "part.service.SearchByCategory", model.PartsFilter{CategoryLike: category})
}

// SearchLowStock returns parts whose stock is strictly below threshold.
func (svc *service) SearchLowStock(ctx context.Context, threshold int) ([]model.Part, error) {
	return svc.list(ctx, "part.service.SearchLowStock", model.PartsFilter{StockBelow: &threshold})
}

// SearchByPriceRange matches prices in [minPrice, maxPrice].
func (svc *service) SearchByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]model.Part, error) {
	const op = "part.service.SearchByPriceRange"

	if minPrice.GreaterThan(maxPrice) {
		logger.Error(ctx, "price range: min greater than max",
			logger.String("min", minPrice.String()),
			logger.String("max", maxPrice.String()),
		)
		return nil, fmt.Errorf("%s: %w: min price greater than max price", op, model.ErrValidation)
	}

	return svc.list(ctx, op, model.PartsFilter{PriceMin: &minPrice, PriceMax: &maxPrice})
}

// SearchByTerm matches term in the name, the description or the code.
func (svc *service) SearchByTerm(ctx context.Context, term string) ([]model.Part, error) {
	return svc.list(ctx, "part.service.SearchByTerm", model.PartsFilter{Term: term})
}

func (svc *service) list(ctx context.Context, op string, filter model.PartsFilter) ([]model.Part, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	parts, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parts, nil
}

func (svc *service) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	const op = "part.service.PartByID"
	log := logger.With(logger.Int64("part_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrPartNotFound) {
			log.Error(ctx, "repository part by id", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) PartByCode(ctx context.Context, code string) (*model.Part, error) {
	const op = "part.service.PartByCode"
	log := logger.With(logger.String("part_code", code))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, model.ErrPartNotFound) {
			log.Error(ctx, "repository part by code", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) Create(ctx context.Context, params model.PartParams) (*model.Part, error) {
	const op = "part.service.Create"

	params, err := normalizePartParams(params)
	if err != nil {
		logger.Error(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log := logger.With(logger.String("part_code", params.Code))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var created *model.Part
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := svc.repo.ExistsByCode(ctx, params.Code)
		if err != nil {
			return fmt.Errorf("exists by code: %w", err)
		}
		if exists {
			return model.ErrDuplicatePartCode
		}

		created, err = svc.repo.Create(ctx, partFromParams(params))
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}

		return svc.repo.AddMovement(ctx, &model.StockMovement{
			PartID:      created.ID,
			Kind:        model.MovementInitial,
			Delta:       created.Stock,
			StockBefore: 0,
			StockAfter:  created.Stock,
		})
	})
	if err != nil {
		if !errors.Is(err, model.ErrDuplicatePartCode) {
			log.Error(ctx, "create part", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part created", logger.Int64("part_id", created.ID))
	return created, nil
}

// Update replaces every mutable field of the part. A stock change is recorded
// in the ledger as a manual set.
func (svc *service) Update(ctx context.Context, id int64, params model.PartParams) (*model.Part, error) {
	const op = "part.service.Update"
	log := logger.With(logger.Int64("part_id", id))

	params, err := normalizePartParams(params)
	if err != nil {
		log.Error(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var updated *model.Part
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := svc.repo.PartByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		taken, err := svc.repo.ExistsByCodeExcept(ctx, params.Code, id)
		if err != nil {
			return fmt.Errorf("exists by code: %w", err)
		}
		if taken {
			return model.ErrDuplicatePartCode
		}

		p := partFromParams(params)
		p.ID = id
		updated, err = svc.repo.Update(ctx, p)
		if err != nil {
			return err
		}

		if delta := updated.Stock - current.Stock; delta != 0 {
			return svc.repo.AddMovement(ctx, &model.StockMovement{
				PartID:      id,
				Kind:        model.MovementManualSet,
				Delta:       delta,
				StockBefore: current.Stock,
				StockAfter:  updated.Stock,
			})
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "update part", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// UpdateStock sets the stock to an absolute value.
func (svc *service) UpdateStock(ctx context.Context, id int64, stock int) (*model.Part, error) {
	const op = "part.service.UpdateStock"
	log := logger.With(
		logger.Int64("part_id", id),
		logger.Int("stock", stock),
	)

	if stock < 0 {
		log.Error(ctx, "negative stock")
		return nil, fmt.Errorf("%s: %w: stock must not be negative", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var updated *model.Part
	err := svc.tx.WithTx(ctx, func(ctx context.Context) error {
		current, err := svc.repo.PartByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		updated, err = svc.repo.SetStock(ctx, id, stock)
		if err != nil {
			return err
		}

		if delta := stock - current.Stock; delta != 0 {
			return svc.repo.AddMovement(ctx, &model.StockMovement{
				PartID:      id,
				Kind:        model.MovementManualSet,
				Delta:       delta,
				StockBefore: current.Stock,
				StockAfter:  stock,
			})
		}
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error(ctx, "update stock", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (svc *service) Delete(ctx context.Context, id int64) error {
	const op = "part.service.Delete"
	log := logger.With(logger.Int64("part_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrPartNotFound) {
			log.Error(ctx, "repository delete part", logger.ErrorF(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part deleted")
	return nil
}

func (svc *service) Movements(ctx context.Context, id int64) ([]model.StockMovement, error) {
	const op = "part.service.Movements"
	log := logger.With(logger.Int64("part_id", id))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if _, err := svc.repo.PartByID(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	movements, err := svc.repo.Movements(ctx, id)
	if err != nil {
		log.Error(ctx, "repository movements", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movements, nil
}

func isClientError(err error) bool {
	return errors.Is(err, model.ErrPartNotFound) ||
		errors.Is(err, model.ErrDuplicatePartCode) ||
		errors.Is(err, model.ErrValidation)
}
