package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"fba_scanner/internal/domain"
	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/errcodes"
)

const MaxPendingLimit = 100

// DealRepository is the deal store. Each operation runs in its own
// transaction; the (ean, asin) primary key is the dedupe key.
type DealRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDealRepository создаёт новый экземпляр репозитория.
func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db, now: time.Now}
}

// withTx выполняет функцию в транзакции.
func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Save stores a new deal. It reports false when a deal with the same key
// already exists; the stored record is left untouched.
func (r *DealRepository) Save(ctx context.Context, deal entity.Deal) (bool, error) {
	var saved bool

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO deals (` + dealColumns + `)
			VALUES (:ean, :asin, :name, :supplier_cost, :amazon_price, :fees, :profit, :roi, :estimated_sales,
				:amazon_link, :supplier_link, :sas_link, :image_url, :posted, :posted_at, :created_at)
			ON CONFLICT (ean, asin) DO NOTHING`

		res, err := tx.NamedExecContext(ctx, query, fromDeal(deal, r.now()))
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to insert deal")
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
		}

		saved = rows == 1

		return nil
	})
	if err != nil {
		return false, err
	}

	return saved, nil
}

// ReadPending возвращает неопубликованные сделки, старые первыми.
func (r *DealRepository) ReadPending(ctx context.Context, limit int) ([]entity.Deal, error) {
	if limit <= 0 || limit > MaxPendingLimit {
		return nil, domain.NewError(errcodes.InvalidPaging, fmt.Sprintf("limit must be in [1, %d]", MaxPendingLimit))
	}

	query := `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE NOT posted
		ORDER BY created_at, ean, asin
		LIMIT $1`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to read pending deals")
	}

	return lo.Map(schemas, func(s dealSchema, _ int) entity.Deal { return s.toDomain() }), nil
}

// MarkPosted flips the posting flag once. Marking an already posted deal is
// a no-op.
func (r *DealRepository) MarkPosted(ctx context.Context, key entity.DealKey) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		// Блокируем строку до конца транзакции
		var posted bool

		query := `SELECT posted FROM deals WHERE ean = $1 AND asin = $2 FOR UPDATE`
		if err := tx.GetContext(ctx, &posted, query, key.EAN, key.ASIN); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewError(errcodes.DealNotFound, "deal not found")
			}

			return domain.WrapError(err, errcodes.InternalServerError, "failed to lock deal")
		}

		if posted {
			return nil
		}

		update := `UPDATE deals SET posted = TRUE, posted_at = $1 WHERE ean = $2 AND asin = $3`
		if _, err := tx.ExecContext(ctx, update, r.now().UTC(), key.EAN, key.ASIN); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to mark deal posted")
		}

		return nil
	})
}
