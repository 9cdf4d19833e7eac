package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/platform/logger"
	"github.com/unitip/unitip-api/internal/store"
)

// PostgresOfferStore implements the store.OfferStore interface
// using a PostgreSQL database as the storage backend. Offers live in
// two tables (single_offers and multi_offers); the listing queries
// project both onto the unified store.OfferRow shape.
type PostgresOfferStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOfferStore creates a new PostgreSQL implementation of the
// OfferStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresOfferStore(db store.DBTX, logger *slog.Logger) *PostgresOfferStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOfferStore{
		db:     db,
		logger: logger.With(slog.String("component", "offer_store")),
	}
}

// Ensure PostgresOfferStore implements store.OfferStore interface
var _ store.OfferStore = (*PostgresOfferStore)(nil)

// selectSingleOffers projects single_offers rows onto the unified
// listing shape. Null columns collapse to ''/0 so callers never see
// partial rows.
const selectSingleOffers = `
	SELECT so.id,
	       COALESCE(so.title, ''),
	       COALESCE(so.description, ''),
	       COALESCE(so.type, 'jasa-titip'),
	       COALESCE(so.price, 0),
	       COALESCE(so.pickup_area, ''),
	       COALESCE(so.delivery_area, ''),
	       so.available_until,
	       COALESCE(u.name, ''),
	       so.created_at,
	       so.updated_at
	FROM single_offers so
	INNER JOIN users u ON u.id = so.freelancer
`

// selectMultiOffers projects multi_offers rows onto the same shape:
// the type is hard-coded, location surfaces as delivery_area and
// pickup_area is forced empty.
const selectMultiOffers = `
	SELECT mo.id,
	       COALESCE(mo.title, ''),
	       COALESCE(mo.description, ''),
	       'antar-jemput',
	       COALESCE(mo.price, 0),
	       '',
	       COALESCE(mo.location, ''),
	       mo.available_until,
	       COALESCE(u.name, ''),
	       mo.created_at,
	       mo.updated_at
	FROM multi_offers mo
	INNER JOIN users u ON u.id = mo.freelancer
`

// insertSingleOffer and insertMultiOffer name every column explicitly
// so the statements stay checkable against the migrated schema.
const insertSingleOffer = `
	INSERT INTO single_offers
		(id, title, description, type, price, pickup_area, delivery_area,
		 available_until, offer_status, expired_at, freelancer, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, $10, $11, $12)
	RETURNING id
`

const insertMultiOffer = `
	INSERT INTO multi_offers
		(id, title, description, price, location, available_until,
		 status, freelancer, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id
`

// CreateSingle implements store.OfferStore.CreateSingle
// It inserts a "jasa-titip" offer and returns the new row ID.
// Returns store.ErrInvalidEntity if the owning user does not exist and
// store.ErrNoID if the insert hands back no ID.
func (s *PostgresOfferStore) CreateSingle(
	ctx context.Context,
	offer *domain.SingleOffer,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := offer.Validate(); err != nil {
		log.Warn("offer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("offer_id", offer.ID))
		return "", err
	}

	var id string
	err := s.db.QueryRowContext(
		ctx,
		insertSingleOffer,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Type,
		offer.Price,
		offer.PickupArea,
		offer.DeliveryArea,
		offer.AvailableUntil,
		offer.OfferStatus,
		offer.Freelancer,
		offer.CreatedAt,
		offer.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return "", s.mapCreateError(log, err, "single offer", offer.Freelancer)
	}

	log.Info("single offer created",
		slog.String("offer_id", id),
		slog.String("freelancer", offer.Freelancer))
	return id, nil
}

// CreateMulti implements store.OfferStore.CreateMulti
// It inserts an "antar-jemput" offer and returns the new row ID.
func (s *PostgresOfferStore) CreateMulti(
	ctx context.Context,
	offer *domain.MultiOffer,
) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := offer.Validate(); err != nil {
		log.Warn("offer validation failed during create",
			slog.String("error", err.Error()),
			slog.String("offer_id", offer.ID))
		return "", err
	}

	var id string
	err := s.db.QueryRowContext(
		ctx,
		insertMultiOffer,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Price,
		offer.Location,
		offer.AvailableUntil,
		offer.Status,
		offer.Freelancer,
		offer.CreatedAt,
		offer.UpdatedAt,
	).Scan(&id)

	if err != nil {
		return "", s.mapCreateError(log, err, "multi offer", offer.Freelancer)
	}

	log.Info("multi offer created",
		slog.String("offer_id", id),
		slog.String("freelancer", offer.Freelancer))
	return id, nil
}

// mapCreateError converts insert failures into store sentinel errors.
func (s *PostgresOfferStore) mapCreateError(
	log *slog.Logger,
	err error,
	entity, freelancer string,
) error {
	if errors.Is(err, sql.ErrNoRows) {
		log.Error("offer insert returned no id",
			slog.String("entity", entity))
		return store.ErrNoID
	}

	if isForeignKeyViolation(err) {
		log.Warn("foreign key violation during offer creation",
			slog.String("error", err.Error()),
			slog.String("freelancer", freelancer))
		return fmt.Errorf("%w: freelancer %s not found", store.ErrInvalidEntity, freelancer)
	}

	log.Error("failed to create offer",
		slog.String("error", err.Error()),
		slog.String("entity", entity))
	return err
}

// ListSingle implements store.OfferStore.ListSingle
// It returns a page of single offers ordered by creation time descending.
func (s *PostgresOfferStore) ListSingle(
	ctx context.Context,
	offset, limit int,
) ([]store.OfferRow, error) {
	query := selectSingleOffers + `
	ORDER BY so.created_at DESC
	OFFSET $1 LIMIT $2
	`
	return s.queryOffers(ctx, query, offset, limit)
}

// ListAllSingle implements store.OfferStore.ListAllSingle
// It returns every single offer, unpaginated.
func (s *PostgresOfferStore) ListAllSingle(ctx context.Context) ([]store.OfferRow, error) {
	return s.queryOffers(ctx, selectSingleOffers)
}

// ListMulti implements store.OfferStore.ListMulti
// It returns a page of multi offers ordered by creation time descending.
func (s *PostgresOfferStore) ListMulti(
	ctx context.Context,
	offset, limit int,
) ([]store.OfferRow, error) {
	query := selectMultiOffers + `
	ORDER BY mo.created_at DESC
	OFFSET $1 LIMIT $2
	`
	return s.queryOffers(ctx, query, offset, limit)
}

// ListAllMulti implements store.OfferStore.ListAllMulti
// It returns every multi offer, unpaginated.
func (s *PostgresOfferStore) ListAllMulti(ctx context.Context) ([]store.OfferRow, error) {
	return s.queryOffers(ctx, selectMultiOffers)
}

// CountSingle implements store.OfferStore.CountSingle
func (s *PostgresOfferStore) CountSingle(ctx context.Context) (int, error) {
	return s.countTable(ctx, "single_offers")
}

// CountMulti implements store.OfferStore.CountMulti
func (s *PostgresOfferStore) CountMulti(ctx context.Context) (int, error) {
	return s.countTable(ctx, "multi_offers")
}

func (s *PostgresOfferStore) countTable(ctx context.Context, table string) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// table is one of two fixed identifiers, never user input
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)

	var count int
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		log.Error("failed to count offers",
			slog.String("error", err.Error()),
			slog.String("table", table))
		return 0, err
	}

	return count, nil
}

// queryOffers runs one of the listing queries and scans the rows into
// the unified OfferRow shape.
func (s *PostgresOfferStore) queryOffers(
	ctx context.Context,
	query string,
	args ...any,
) ([]store.OfferRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query offers",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close offer rows",
				slog.String("error", closeErr.Error()))
		}
	}()

	var offers []store.OfferRow
	for rows.Next() {
		var row store.OfferRow
		if err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Description,
			&row.Type,
			&row.Price,
			&row.PickupArea,
			&row.DeliveryArea,
			&row.AvailableUntil,
			&row.FreelancerName,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			log.Error("failed to scan offer row",
				slog.String("error", err.Error()))
			return nil, err
		}
		offers = append(offers, row)
	}

	if err := rows.Err(); err != nil {
		log.Error("offer row iteration failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	return offers, nil
}
