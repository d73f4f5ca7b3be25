//go:build unit || e2e

// Package memstore is an in-memory unit of work for usecase tests. Transactions
// run one at a time under a single mutex and roll back by restoring a snapshot.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"inventory-ledger/internal/domain/product"
	"inventory-ledger/internal/domain/reservation"
	"inventory-ledger/internal/infra"
	"inventory-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRow struct {
	id            uuid.UUID
	name          string
	quantity      int
	available     int
	totalSold     int
	inventoryType product.InventoryType
	createdAt     time.Time
	updatedAt     time.Time
}

type reservationRow struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int
	sessionID reservation.SessionID
	expiresAt time.Time
	createdAt time.Time
}

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu           sync.Mutex
	products     map[uuid.UUID]productRow
	reservations map[uuid.UUID]reservationRow
	jobs         []Job

	withinErr error
	txCount   int
}

func New() *Store {
	return &Store{
		products:     make(map[uuid.UUID]productRow),
		reservations: make(map[uuid.UUID]reservationRow),
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.txCount++
	if s.withinErr != nil {
		return s.withinErr
	}

	products, reservations, jobs := s.snapshot()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.products, s.reservations, s.jobs = products, reservations, jobs
		return err
	}
	return nil
}

// FailWithin makes every following transaction fail with err before it runs.
func (s *Store) FailWithin(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.withinErr = err
}

func (s *Store) TxCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txCount
}

func (s *Store) snapshot() (map[uuid.UUID]productRow, map[uuid.UUID]reservationRow, []Job) {
	products := make(map[uuid.UUID]productRow, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	reservations := make(map[uuid.UUID]reservationRow, len(s.reservations))
	for k, v := range s.reservations {
		reservations[k] = v
	}
	jobs := make([]Job, len(s.jobs))
	copy(jobs, s.jobs)
	return products, reservations, jobs
}

// =============================================================================
// Seeding and inspection
// =============================================================================

func (s *Store) SeedProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID()] = toProductRow(p)
}

func (s *Store) SeedReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = toReservationRow(r)
}

func (s *Store) Product(id uuid.UUID) (*product.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.products[id]
	if !ok {
		return nil, false
	}
	return row.toDomain(), true
}

func (s *Store) HasReservation(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.reservations[id]
	return ok
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

// Reserved sums the live reservations of a product.
func (s *Store) Reserved(productID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, r := range s.reservations {
		if r.productID == productID {
			total += r.quantity
		}
	}
	return total
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// =============================================================================
// Transaction-scoped repositories
// =============================================================================

// memTx runs with Store.mu held, so its repositories touch the maps directly.
type memTx struct {
	s *Store
}

func (t *memTx) Products() shared.ProductRepository         { return productRepo{s: t.s} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository {
	return notificationRepo{s: t.s}
}

type productRepo struct{ s *Store }

func (r productRepo) Create(_ context.Context, p *product.Product) error {
	if _, exists := r.s.products[p.ID()]; exists {
		return infra.WrapRepoErr("product already exists", nil, infra.KindDuplicateKey)
	}
	r.s.products[p.ID()] = toProductRow(p)
	return nil
}

func (r productRepo) LockByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error) {
	out := make(map[uuid.UUID]*product.Product, len(ids))
	for _, id := range ids {
		if row, ok := r.s.products[id]; ok {
			out[id] = row.toDomain()
		}
	}
	return out, nil
}

func (r productRepo) SaveStock(_ context.Context, p *product.Product) error {
	if _, ok := r.s.products[p.ID()]; !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	r.s.products[p.ID()] = toProductRow(p)
	return nil
}

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.s.products[res.ProductID()]; !ok {
		return infra.WrapRepoErr("product does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.s.reservations[res.ID()] = toReservationRow(res)
	return nil
}

func (r reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return row.toDomain(), nil
}

func (r reservationRepo) Delete(_ context.Context, id uuid.UUID) (*reservation.Reservation, bool, error) {
	row, ok := r.s.reservations[id]
	if !ok {
		return nil, false, nil
	}
	delete(r.s.reservations, id)
	return row.toDomain(), true, nil
}

func (r reservationRepo) ListBySession(_ context.Context, sessionID reservation.SessionID) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	for _, row := range r.s.reservations {
		if row.sessionID == sessionID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].createdAt.Equal(rows[j].createdAt) {
			return rows[i].createdAt.Before(rows[j].createdAt)
		}
		return rows[i].id.String() < rows[j].id.String()
	})
	return toDomainReservations(rows), nil
}

func (r reservationRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]*reservation.Reservation, error) {
	var rows []reservationRow
	for _, row := range r.s.reservations {
		if !row.expiresAt.After(now) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].expiresAt.Equal(rows[j].expiresAt) {
			return rows[i].expiresAt.Before(rows[j].expiresAt)
		}
		return rows[i].id.String() < rows[j].id.String()
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return toDomainReservations(rows), nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.jobs = append(r.s.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// =============================================================================
// Row conversion
// =============================================================================

func toProductRow(p *product.Product) productRow {
	return productRow{
		id:            p.ID(),
		name:          p.Name(),
		quantity:      p.Quantity(),
		available:     p.Available(),
		totalSold:     p.TotalSold(),
		inventoryType: p.InventoryType(),
		createdAt:     p.CreatedAt(),
		updatedAt:     p.UpdatedAt(),
	}
}

func (row productRow) toDomain() *product.Product {
	return product.ReconstructProduct(row.id, row.name, row.quantity, row.available, row.totalSold, row.inventoryType, row.createdAt, row.updatedAt)
}

func toReservationRow(r *reservation.Reservation) reservationRow {
	return reservationRow{
		id:        r.ID(),
		productID: r.ProductID(),
		quantity:  r.Quantity(),
		sessionID: r.SessionID(),
		expiresAt: r.ExpiresAt(),
		createdAt: r.CreatedAt(),
	}
}

func (row reservationRow) toDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(row.id, row.productID, row.quantity, row.sessionID, row.expiresAt, row.createdAt)
}

func toDomainReservations(rows []reservationRow) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
