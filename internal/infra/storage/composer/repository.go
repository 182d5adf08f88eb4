package composer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/wedding-composer/internal/domain"
	"github.com/m04kA/wedding-composer/pkg/dbmetrics"
	"github.com/m04kA/wedding-composer/pkg/psqlbuilder"
)

const (
	tableName = "composers"

	// pqUniqueViolation код ошибки PostgreSQL unique_violation
	pqUniqueViolation = pq.ErrorCode("23505")
	// completedSlotIndex частичный уникальный индекс (preferred_date, time_slot) для оплаченных композеров
	completedSlotIndex = "composers_completed_slot_key"
)

var columns = []string{
	"id",
	"user_id",
	"event_type",
	"preferred_date",
	"time_slot",
	"contact_name",
	"contact_email",
	"contact_phone",
	"partner_one",
	"partner_two",
	"guest_count",
	"ceremony_music",
	"processional_song",
	"recessional_song",
	"ceremony_script",
	"vows_type",
	"photography_package",
	"photo_book_addon",
	"photo_book_quantity",
	"extra_time_addon",
	"byob_bar_addon",
	"rehearsal_addon",
	"payment_method",
	"base_package_price",
	"ach_discount_amount",
	"affirm_discount_amount",
	"amount_paid",
	"total_price",
	"payment_status",
	"payment_session_id",
	"current_step",
	"notes",
	"payment_initiated_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с композерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория композеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый композер; ID генерируется вызывающей стороной
func (r *Repository) Create(ctx context.Context, c *domain.Composer) (*domain.Composer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"user_id",
			"event_type",
			"preferred_date",
			"time_slot",
			"photo_book_quantity",
			"payment_method",
			"base_package_price",
			"ach_discount_amount",
			"affirm_discount_amount",
			"amount_paid",
			"total_price",
			"payment_status",
			"current_step",
		).
		Values(
			c.ID,
			c.UserID,
			c.EventType,
			c.PreferredDate,
			c.TimeSlot,
			c.PhotoBookQuantity,
			c.PaymentMethod,
			c.BasePackagePrice,
			c.ACHDiscountAmount,
			c.AffirmDiscountAmount,
			c.AmountPaid,
			c.TotalPrice,
			c.PaymentStatus,
			c.CurrentStep,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID получает композер по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Composer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanComposer(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrComposerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan composer: %v", ErrScanRow, err)
	}

	return c, nil
}

// GetByUserID получает композеры пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Composer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	composers := make([]*domain.Composer, 0)
	for rows.Next() {
		c, err := scanComposer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		composers = append(composers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return composers, nil
}

// Update применяет частичное обновление.
// Нарушение уникального индекса оплаченных слотов возвращается как ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, id string, patch *domain.ComposerPatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := patchValues(patch)
	if len(values) == 0 {
		return ErrEmptyPatch
	}
	values["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := psqlbuilder.Update(tableName).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isCompletedSlotViolation(err) {
			return fmt.Errorf("%w: Update - composer %s: %v", ErrSlotTaken, id, err)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrComposerNotFound
	}

	return nil
}

// GetBookedIndex строит индекс занятых слотов за период [from, to].
// Учитываются только композеры со статусом completed.
func (r *Repository) GetBookedIndex(ctx context.Context, from, to string) (domain.BookedIndex, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("preferred_date", "time_slot").
		From(tableName).
		Where(squirrel.Eq{"payment_status": domain.PaymentStatusCompleted}).
		Where(squirrel.GtOrEq{"preferred_date": from}).
		Where(squirrel.LtOrEq{"preferred_date": to}).
		Where(squirrel.NotEq{"time_slot": nil}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedIndex - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedIndex - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	index := domain.NewBookedIndex()
	for rows.Next() {
		var (
			date sql.NullTime
			slot string
		)
		if err := rows.Scan(&date, &slot); err != nil {
			return nil, fmt.Errorf("%w: GetBookedIndex - scan row: %v", ErrScanRow, err)
		}
		if date.Valid {
			index.Add(date.Time.Format(domain.DateFormat), slot)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedIndex - rows error: %v", ErrScanRow, err)
	}

	return index, nil
}

// IsSlotTaken проверяет, занят ли слот другим оплаченным композером.
// excludeID (может быть пустым) исключает композер из проверки.
// Внутри транзакции найденная строка блокируется (FOR UPDATE).
func (r *Repository) IsSlotTaken(ctx context.Context, date, slot, excludeID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From(tableName).
		Where(squirrel.Eq{
			"payment_status": domain.PaymentStatusCompleted,
			"preferred_date": date,
			"time_slot":      slot,
		}).
		Limit(1)

	if excludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var holderID string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holderID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotTaken - scan id: %v", ErrScanRow, err)
	}

	return true, nil
}

func patchValues(p *domain.ComposerPatch) map[string]interface{} {
	values := make(map[string]interface{})
	if p == nil {
		return values
	}

	if p.EventType != nil {
		values["event_type"] = *p.EventType
	}
	if p.ClearDateTime {
		values["preferred_date"] = nil
		values["time_slot"] = nil
	}
	putString(values, "preferred_date", p.PreferredDate)
	putString(values, "time_slot", p.TimeSlot)

	putString(values, "contact_name", p.ContactName)
	putString(values, "contact_email", p.ContactEmail)
	putString(values, "contact_phone", p.ContactPhone)
	putString(values, "partner_one", p.PartnerOne)
	putString(values, "partner_two", p.PartnerTwo)
	if p.GuestCount != nil {
		values["guest_count"] = *p.GuestCount
	}

	putString(values, "ceremony_music", p.CeremonyMusic)
	putString(values, "processional_song", p.ProcessionalSong)
	putString(values, "recessional_song", p.RecessionalSong)
	putString(values, "ceremony_script", p.CeremonyScript)
	putString(values, "vows_type", p.VowsType)
	putString(values, "photography_package", p.PhotographyPackage)

	if p.PhotoBookAddon != nil {
		values["photo_book_addon"] = *p.PhotoBookAddon
	}
	if p.PhotoBookQuantity != nil {
		values["photo_book_quantity"] = *p.PhotoBookQuantity
	}
	if p.ExtraTimeAddon != nil {
		values["extra_time_addon"] = *p.ExtraTimeAddon
	}
	if p.ByobBarAddon != nil {
		values["byob_bar_addon"] = *p.ByobBarAddon
	}
	if p.RehearsalAddon != nil {
		values["rehearsal_addon"] = *p.RehearsalAddon
	}

	if p.PaymentMethod != nil {
		values["payment_method"] = *p.PaymentMethod
	}
	if p.BasePackagePrice != nil {
		values["base_package_price"] = *p.BasePackagePrice
	}
	if p.ACHDiscountAmount != nil {
		values["ach_discount_amount"] = *p.ACHDiscountAmount
	}
	if p.AffirmDiscountAmount != nil {
		values["affirm_discount_amount"] = *p.AffirmDiscountAmount
	}
	if p.AmountPaid != nil {
		values["amount_paid"] = *p.AmountPaid
	}
	if p.TotalPrice != nil {
		values["total_price"] = *p.TotalPrice
	}
	if p.PaymentStatus != nil {
		values["payment_status"] = *p.PaymentStatus
	}
	putString(values, "payment_session_id", p.PaymentSessionID)

	if p.CurrentStep != nil {
		values["current_step"] = *p.CurrentStep
	}
	putString(values, "notes", p.Notes)

	if p.PaymentInitiatedAt != nil {
		values["payment_initiated_at"] = *p.PaymentInitiatedAt
	}
	if p.CompletedAt != nil {
		values["completed_at"] = *p.CompletedAt
	}

	return values
}

func putString(values map[string]interface{}, column string, v *string) {
	if v != nil {
		values[column] = *v
	}
}

// scanComposer сканирует строку в порядке columns
func scanComposer(row scanner) (*domain.Composer, error) {
	var (
		c             domain.Composer
		preferredDate sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.EventType,
		&preferredDate,
		&c.TimeSlot,
		&c.ContactName,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.PartnerOne,
		&c.PartnerTwo,
		&c.GuestCount,
		&c.CeremonyMusic,
		&c.ProcessionalSong,
		&c.RecessionalSong,
		&c.CeremonyScript,
		&c.VowsType,
		&c.PhotographyPackage,
		&c.PhotoBookAddon,
		&c.PhotoBookQuantity,
		&c.ExtraTimeAddon,
		&c.ByobBarAddon,
		&c.RehearsalAddon,
		&c.PaymentMethod,
		&c.BasePackagePrice,
		&c.ACHDiscountAmount,
		&c.AffirmDiscountAmount,
		&c.AmountPaid,
		&c.TotalPrice,
		&c.PaymentStatus,
		&c.PaymentSessionID,
		&c.CurrentStep,
		&c.Notes,
		&c.PaymentInitiatedAt,
		&c.CompletedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if preferredDate.Valid {
		d := preferredDate.Time.Format(domain.DateFormat)
		c.PreferredDate = &d
	}

	return &c, nil
}

func isCompletedSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation && (pqErr.Constraint == "" || pqErr.Constraint == completedSlotIndex)
}
