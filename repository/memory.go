package repository

import (
	"context"
	"sort"
	"sync"

	"denuncias-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryReports implements ReportRepository in memory, for tests and demo
// runs without a database. Geometry still round-trips through the canonical
// codec so the storage path is exercised the same way Mongo exercises it.
type MemoryReports struct {
	mu    sync.RWMutex
	docs  []reportDoc
	byID  map[primitive.ObjectID]int
	users map[primitive.ObjectID]models.User
}

// NewMemoryReports creates an empty in-memory repository.
func NewMemoryReports() *MemoryReports {
	return &MemoryReports{
		byID:  make(map[primitive.ObjectID]int),
		users: make(map[primitive.ObjectID]models.User),
	}
}

// AddUser registers reporter identity for the FindAll join.
func (m *MemoryReports) AddUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *MemoryReports) Save(_ context.Context, report *models.Report) (*models.Report, error) {
	doc, err := toDoc(report)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[doc.ID] = len(m.docs)
	m.docs = append(m.docs, doc)

	stored := *report
	stored.ID = doc.ID
	return &stored, nil
}

func (m *MemoryReports) FindByOwner(_ context.Context, reporterID primitive.ObjectID) ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Report
	for _, d := range m.docs {
		if d.UserID != reporterID {
			continue
		}
		r, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MemoryReports) FindAll(_ context.Context) ([]AdminReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reports := make([]models.Report, 0, len(m.docs))
	for _, d := range m.docs {
		r, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	sortNewestFirst(reports)

	out := make([]AdminReport, 0, len(reports))
	for _, r := range reports {
		entry := AdminReport{Report: r}
		if u, ok := m.users[r.ReporterID]; ok {
			entry.Reporter = models.ReporterIdentity{
				FirstNames:      u.FirstNames,
				PaternalSurname: u.PaternalSurname,
				MaternalSurname: u.MaternalSurname,
				DNI:             u.DNI,
				Email:           u.Email,
				Phone:           u.Phone,
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (m *MemoryReports) FindPublic(_ context.Context) ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Report, 0, len(m.docs))
	for _, d := range m.docs {
		r, err := fromDoc(d)
		if err != nil {
			return nil, err
		}
		r.ReporterID = primitive.NilObjectID
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *MemoryReports) UpdateStatus(_ context.Context, id primitive.ObjectID, status models.ReportStatus) (*models.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	m.docs[idx].Status = string(status)

	r, err := fromDoc(m.docs[idx])
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func sortNewestFirst(reports []models.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}
