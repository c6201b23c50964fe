package memstore

import (
	"context"
	"sync"
)

// TransactionManager сериализует check-then-insert секции поверх in-memory store.
// Настоящих транзакций здесь нет: один mutex гарантирует, что проверка
// доступности и вставка брони выполняются атомарно относительно друг друга.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает менеджер транзакций для in-memory store
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под глобальным mutex-ом
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

// DoSerializable эквивалентен Do: mutex уже дает сериализуемость
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под тем же mutex-ом
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
