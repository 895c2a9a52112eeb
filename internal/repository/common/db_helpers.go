package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Все выборки в сервисе tenant-scoped: предикат по user_id зашит в хелперы,
// чтобы ни один репозиторий не мог его случайно опустить.

// GetOwned возвращает сущность по (id, владелец).
func GetOwned[T any](ctx context.Context, db *sqlx.DB, table string, id, userID uuid.UUID, notFoundErr error) (*T, error) {
	var entity T
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1 AND user_id = $2", table)

	if err := db.GetContext(ctx, &entity, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("get from %s: %w", table, err)
	}

	return &entity, nil
}

// ListOwned возвращает все сущности владельца в заданном порядке.
func ListOwned[T any](ctx context.Context, db *sqlx.DB, table, orderBy string, userID uuid.UUID) ([]T, error) {
	entities := []T{}
	query := fmt.Sprintf("SELECT * FROM %s WHERE user_id = $1 ORDER BY %s", table, orderBy)

	if err := db.SelectContext(ctx, &entities, query, userID); err != nil {
		return nil, fmt.Errorf("list from %s: %w", table, err)
	}

	return entities, nil
}

// DeleteOwned удаляет сущность по (id, владелец) и возвращает число удалённых
// строк. Ноль строк — не ошибка: delete идемпотентен.
func DeleteOwned(ctx context.Context, db *sqlx.DB, table string, id, userID uuid.UUID) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", table)

	res, err := db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", table, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

// UpdateBuilder собирает динамический SET для частичных обновлений.
type UpdateBuilder struct {
	sets []string
	args []interface{}
}

// Set добавляет колонку в SET. Вызывается только для непустых полей patch.
func (b *UpdateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Empty сообщает, было ли добавлено хоть одно поле.
func (b *UpdateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Where добавляет позиционный аргумент условия и возвращает его placeholder.
func (b *UpdateBuilder) Where(value interface{}) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// SetClause возвращает текст SET и накопленные аргументы.
func (b *UpdateBuilder) SetClause() (string, []interface{}) {
	return strings.Join(b.sets, ", "), b.args
}

// WithTransaction выполняет функцию внутри транзакции.
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// BatchInserter накапливает строки и вставляет их одним запросом.
type BatchInserter struct {
	tx          *sqlx.Tx
	query       string
	batchSize   int
	values      []interface{}
	rowCount    int
	fieldsCount int
}

// NewBatchInserter создаёт batch inserter поверх открытой транзакции.
// baseQuery — INSERT без VALUES, например "INSERT INTO tasks (a, b)".
func NewBatchInserter(tx *sqlx.Tx, baseQuery string, fieldsCount, batchSize int) *BatchInserter {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &BatchInserter{
		tx:          tx,
		query:       baseQuery,
		batchSize:   batchSize,
		values:      make([]interface{}, 0, batchSize*fieldsCount),
		fieldsCount: fieldsCount,
	}
}

// Add добавляет строку; при достижении размера батча выполняет вставку.
func (bi *BatchInserter) Add(ctx context.Context, rowValues ...interface{}) error {
	if len(rowValues) != bi.fieldsCount {
		return fmt.Errorf("expected %d fields, got %d", bi.fieldsCount, len(rowValues))
	}

	bi.values = append(bi.values, rowValues...)
	bi.rowCount++

	if bi.rowCount >= bi.batchSize {
		return bi.Flush(ctx)
	}

	return nil
}

// Flush вставляет накопленные строки.
func (bi *BatchInserter) Flush(ctx context.Context) error {
	if bi.rowCount == 0 {
		return nil
	}

	var sb strings.Builder
	for i := 0; i < bi.rowCount; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < bi.fieldsCount; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*bi.fieldsCount+j+1)
		}
		sb.WriteString(")")
	}

	query := bi.query + " VALUES " + sb.String()

	if _, err := bi.tx.ExecContext(ctx, query, bi.values...); err != nil {
		return fmt.Errorf("batch insert: %w", err)
	}

	bi.values = bi.values[:0]
	bi.rowCount = 0

	return nil
}
