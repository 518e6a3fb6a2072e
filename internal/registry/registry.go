package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ms-attendance/internal/config"
	"ms-attendance/internal/importer"
	"ms-attendance/internal/logger"
	"ms-attendance/internal/models"
	"ms-attendance/internal/storage"
)

// Registry owns the live record set and the event configuration. All
// mutations run under one mutex so a read-modify-write (match, transition,
// persist) cannot interleave with another operator's call.
//
// Persistence is applied after the in-memory transition. A failed save is
// reported as ErrPersistence but never rolled back: the operation partially
// succeeded and the caller should retry Save.
type Registry struct {
	mu       sync.Mutex
	store    storage.Store
	logger   *logger.Logger
	defaults config.EventDefaults
	engine   *CheckInEngine
	now      func() time.Time

	cfg       models.EventConfig
	attendees []models.AttendanceRecord
}

// WalkInParams is the input for AddWalkIn.
type WalkInParams struct {
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	TransactionID string `json:"transaction_id"`
}

const maxWalkInQuantity = 10

func New(store storage.Store, defaults config.EventDefaults, log *logger.Logger) *Registry {
	return &Registry{
		store:    store,
		logger:   log,
		defaults: defaults,
		engine:   NewCheckInEngine(),
		now:      time.Now,
		cfg:      DefaultEventConfig(defaults),
	}
}

// Load restores config and records from the persistence slot. An absent or
// unreadable slot degrades to the built-in defaults plus the sample records,
// which are then persisted; Load never fails outward.
func (r *Registry) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, err := r.store.Load(ctx)
	if err != nil {
		if err != storage.ErrSlotEmpty {
			r.logger.Error("REGISTRY", fmt.Sprintf("Failed to load slot, reseeding: %v", err))
		} else {
			r.logger.Info("REGISTRY", "Empty slot, seeding sample data")
		}
		r.seedLocked(ctx)
		return
	}

	// Stored config keys overlay the defaults, so configs persisted by older
	// builds keep working.
	snapshot := models.Snapshot{Config: DefaultEventConfig(r.defaults)}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		r.logger.Error("REGISTRY", fmt.Sprintf("Corrupt slot payload, reseeding: %v", err))
		r.seedLocked(ctx)
		return
	}

	r.cfg = snapshot.Config
	r.attendees = snapshot.Attendees
	r.logger.Info("REGISTRY", fmt.Sprintf("Loaded %d attendees for %q", len(r.attendees), r.cfg.EventName))
}

func (r *Registry) seedLocked(ctx context.Context) {
	r.cfg = DefaultEventConfig(r.defaults)
	r.attendees = SampleAttendees()
	if err := r.persistLocked(ctx); err != nil {
		r.logger.Error("REGISTRY", fmt.Sprintf("Failed to persist seed state: %v", err))
	}
}

// Save serializes the full current state into the slot.
func (r *Registry) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistLocked(ctx)
}

func (r *Registry) persistLocked(ctx context.Context) error {
	snapshot := models.Snapshot{Config: r.cfg, Attendees: r.attendees}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", ErrPersistence)
	}
	if err := r.store.Save(ctx, payload); err != nil {
		r.logger.Error("REGISTRY", fmt.Sprintf("Slot write failed: %v", err))
		return fmt.Errorf("%v: %w", err, ErrPersistence)
	}
	return nil
}

// GetConfig returns a copy of the current event configuration.
func (r *Registry) GetConfig() models.EventConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// UpdateConfig merge-applies the non-nil fields and persists immediately.
func (r *Registry) UpdateConfig(ctx context.Context, update models.EventConfigUpdate) (models.EventConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if update.EventName != nil && *update.EventName == "" {
		return r.cfg, fmt.Errorf("event name must not be empty: %w", ErrValidation)
	}
	if update.TicketPrice != nil && *update.TicketPrice < 0 {
		return r.cfg, fmt.Errorf("ticket price must not be negative: %w", ErrValidation)
	}
	if update.GrowthXPrice != nil && *update.GrowthXPrice < 0 {
		return r.cfg, fmt.Errorf("growthx price must not be negative: %w", ErrValidation)
	}

	if update.EventName != nil {
		r.cfg.EventName = *update.EventName
	}
	if update.EventDate != nil {
		r.cfg.EventDate = *update.EventDate
	}
	if update.TicketPrice != nil {
		r.cfg.TicketPrice = *update.TicketPrice
	}
	if update.GrowthXPrice != nil {
		r.cfg.GrowthXPrice = *update.GrowthXPrice
	}
	if update.PaymentLink != nil {
		r.cfg.PaymentLink = *update.PaymentLink
	}
	if update.GrowthXPaymentLink != nil {
		r.cfg.GrowthXPaymentLink = *update.GrowthXPaymentLink
	}

	if err := r.persistLocked(ctx); err != nil {
		return r.cfg, err
	}
	return r.cfg, nil
}

// GetAttendees returns a defensive copy of the record set in insertion order.
func (r *Registry) GetAttendees() []models.AttendanceRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneRecords(r.attendees)
}

// FindAttendee resolves a raw scanned/typed string via the ticket matcher.
func (r *Registry) FindAttendee(rawInput string) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match, err := MatchTicket(r.attendees, rawInput)
	if err != nil {
		return models.AttendanceRecord{}, err
	}
	return cloneRecord(match), nil
}

// CheckIn transitions the record with the exact given id to checked-in and
// persists. The returned record reflects the new state even when persistence
// failed (errors.Is(err, ErrPersistence)).
func (r *Registry) CheckIn(ctx context.Context, id string) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.findByIDLocked(id)
	if record == nil {
		return models.AttendanceRecord{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err := r.engine.CheckIn(record); err != nil {
		return cloneRecord(record), err
	}

	r.logger.LogCheckIn("CHECKIN", record.ID, record.Name)
	if err := r.persistLocked(ctx); err != nil {
		return cloneRecord(record), err
	}
	return cloneRecord(record), nil
}

// UndoCheckIn reverses a mistaken check-in on a pre-registered record.
func (r *Registry) UndoCheckIn(ctx context.Context, id string) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.findByIDLocked(id)
	if record == nil {
		return models.AttendanceRecord{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	if err := r.engine.UndoCheckIn(record); err != nil {
		return cloneRecord(record), err
	}

	r.logger.LogCheckIn("UNDO", record.ID, record.Name)
	if err := r.persistLocked(ctx); err != nil {
		return cloneRecord(record), err
	}
	return cloneRecord(record), nil
}

// AddWalkIn creates an on-site purchase record. Walk-ins are born checked-in;
// amountPaid is quantity times the configured unit price, fixed at creation.
func (r *Registry) AddWalkIn(ctx context.Context, params WalkInParams) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if params.Name == "" {
		return models.AttendanceRecord{}, fmt.Errorf("walk-in name required: %w", ErrValidation)
	}
	if params.Quantity < 1 || params.Quantity > maxWalkInQuantity {
		return models.AttendanceRecord{}, fmt.Errorf("quantity must be between 1 and %d: %w", maxWalkInQuantity, ErrValidation)
	}

	existing := r.idSetLocked()
	checkInTime := r.now().UTC()
	record := models.AttendanceRecord{
		ID:            GenerateWalkInID(existing, checkInTime),
		Name:          params.Name,
		TicketType:    "Walk-In",
		Quantity:      params.Quantity,
		AmountPaid:    params.Quantity * r.cfg.TicketPrice,
		Category:      models.CategoryWalkIn,
		CheckedIn:     true,
		CheckInTime:   &checkInTime,
		TransactionID: params.TransactionID,
	}

	r.attendees = append(r.attendees, record)
	r.logger.LogCheckIn("WALKIN", record.ID, fmt.Sprintf("%s x%d", record.Name, record.Quantity))
	if err := r.persistLocked(ctx); err != nil {
		return cloneRecord(&record), err
	}
	return cloneRecord(&record), nil
}

// RemoveWalkIn deletes a walk-in record by exact id. Ids belonging to
// pre-registered records are refused: format collisions must never delete a
// ticket holder.
func (r *Registry) RemoveWalkIn(ctx context.Context, id string) (models.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.attendees {
		if r.attendees[i].ID != id || r.attendees[i].Category != models.CategoryWalkIn {
			continue
		}
		removed := cloneRecord(&r.attendees[i])
		r.attendees = append(r.attendees[:i], r.attendees[i+1:]...)
		r.logger.LogCheckIn("REMOVE", removed.ID, removed.Name)
		if err := r.persistLocked(ctx); err != nil {
			return removed, err
		}
		return removed, nil
	}
	return models.AttendanceRecord{}, fmt.Errorf("walk-in %s: %w", id, ErrNotFound)
}

// ResetCheckIns reverts every pre-registered record to not-checked-in.
// Walk-ins are untouched.
func (r *Registry) ResetCheckIns(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.attendees {
		if r.attendees[i].Category != models.CategoryPreRegistered {
			continue
		}
		r.attendees[i].CheckedIn = false
		r.attendees[i].CheckInTime = nil
	}
	r.logger.Info("REGISTRY", "All pre-registration check-ins reset")
	return r.persistLocked(ctx)
}

// ClearAll wipes the persisted state and reseeds defaults plus sample data.
func (r *Registry) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Warn("REGISTRY", "Clearing all event data")
	r.cfg = DefaultEventConfig(r.defaults)
	r.attendees = SampleAttendees()
	return r.persistLocked(ctx)
}

// ImportAttendees merges parsed candidates into the registry. Candidates
// whose id already exists (byte-for-byte) are skipped; existing records are
// never overwritten. Persists only when something was added.
func (r *Registry) ImportAttendees(ctx context.Context, candidates []models.ImportCandidate) (models.ImportResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	additions := importer.Reconcile(candidates, r.idSetLocked(), r.cfg.TicketPrice, r.now().UTC())
	result := models.ImportResult{TotalParsed: len(candidates), Added: len(additions)}

	if len(additions) == 0 {
		r.logger.Info("IMPORT", fmt.Sprintf("No new records out of %d parsed", result.TotalParsed))
		return result, nil
	}

	r.attendees = append(r.attendees, additions...)
	r.logger.Info("IMPORT", fmt.Sprintf("Added %d of %d parsed records", result.Added, result.TotalParsed))
	if err := r.persistLocked(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// Stats recomputes the aggregate view from the live set.
func (r *Registry) Stats() models.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AggregateStats(r.attendees)
}

// Snapshot returns a deep copy of the full persisted structure, for exports.
func (r *Registry) Snapshot() models.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.Snapshot{Config: r.cfg, Attendees: cloneRecords(r.attendees)}
}

func (r *Registry) findByIDLocked(id string) *models.AttendanceRecord {
	for i := range r.attendees {
		if r.attendees[i].ID == id {
			return &r.attendees[i]
		}
	}
	return nil
}

func (r *Registry) idSetLocked() map[string]struct{} {
	ids := make(map[string]struct{}, len(r.attendees))
	for i := range r.attendees {
		ids[r.attendees[i].ID] = struct{}{}
	}
	return ids
}

// GenerateWalkInID derives a time-seeded id and re-derives on collision, so
// two rapid-fire walk-ins inside one clock tick still get distinct ids.
func GenerateWalkInID(existing map[string]struct{}, now time.Time) string {
	id := fmt.Sprintf("WALKIN-%d", now.UnixMilli())
	if _, taken := existing[id]; !taken {
		return id
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
}

func cloneRecord(record *models.AttendanceRecord) models.AttendanceRecord {
	out := *record
	if record.CheckInTime != nil {
		t := *record.CheckInTime
		out.CheckInTime = &t
	}
	return out
}

func cloneRecords(records []models.AttendanceRecord) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, len(records))
	for i := range records {
		out[i] = cloneRecord(&records[i])
	}
	return out
}
