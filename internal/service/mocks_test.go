package service

import (
	"context"

	"github.com/unitip/unitip-api/internal/domain"
	"github.com/unitip/unitip-api/internal/store"
)

// mockOfferStore serves canned rows and records which calls were made.
type mockOfferStore struct {
	singles []store.OfferRow
	multis  []store.OfferRow
	err     error

	createdSingle *domain.SingleOffer
	createdMulti  *domain.MultiOffer

	listSingleCalls int
	listMultiCalls  int
	listAllCalls    int

	gotOffset int
	gotLimit  int
}

func (m *mockOfferStore) CreateSingle(
	_ context.Context,
	offer *domain.SingleOffer,
) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.createdSingle = offer
	return offer.ID, nil
}

func (m *mockOfferStore) CreateMulti(
	_ context.Context,
	offer *domain.MultiOffer,
) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.createdMulti = offer
	return offer.ID, nil
}

func (m *mockOfferStore) ListSingle(
	_ context.Context,
	offset, limit int,
) ([]store.OfferRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listSingleCalls++
	m.gotOffset, m.gotLimit = offset, limit
	return page(m.singles, offset, limit), nil
}

func (m *mockOfferStore) ListAllSingle(_ context.Context) ([]store.OfferRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listAllCalls++
	return m.singles, nil
}

func (m *mockOfferStore) ListMulti(
	_ context.Context,
	offset, limit int,
) ([]store.OfferRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listMultiCalls++
	m.gotOffset, m.gotLimit = offset, limit
	return page(m.multis, offset, limit), nil
}

func (m *mockOfferStore) ListAllMulti(_ context.Context) ([]store.OfferRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.listAllCalls++
	return m.multis, nil
}

func (m *mockOfferStore) CountSingle(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.singles), nil
}

func (m *mockOfferStore) CountMulti(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.multis), nil
}

func page(rows []store.OfferRow, offset, limit int) []store.OfferRow {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

var _ store.OfferStore = (*mockOfferStore)(nil)

// mockSessionStore serves a single canned session.
type mockSessionStore struct {
	session *store.AuthSession
	err     error
}

func (m *mockSessionStore) GetByToken(
	_ context.Context,
	_ string,
) (*store.AuthSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

var _ store.SessionStore = (*mockSessionStore)(nil)

// mockUserStore echoes profile updates back.
type mockUserStore struct {
	err error

	gotID     string
	gotName   string
	gotGender string
}

func (m *mockUserStore) UpdateProfile(
	_ context.Context,
	id, name, gender string,
) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotID, m.gotName, m.gotGender = id, name, gender
	return &domain.User{ID: id, Name: name, Gender: gender}, nil
}

var _ store.UserStore = (*mockUserStore)(nil)

// mockJobStore records the created application.
type mockJobStore struct {
	err     error
	created *domain.JobApplication
}

func (m *mockJobStore) CreateApplication(
	_ context.Context,
	app *domain.JobApplication,
) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = app
	return app.ID, nil
}

var _ store.JobStore = (*mockJobStore)(nil)
