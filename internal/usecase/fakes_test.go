package usecase

import (
	"context"

	"healthcare-auth/internal/domain/entity"
)

// memStore backs the fake repositories. The fake transactor snapshots and
// restores it to mimic transactional rollback.
type memStore struct {
	nextID   uint
	users    map[uint]*entity.User
	doctors  map[uint]*entity.DoctorProfile
	patients map[uint]*entity.PatientProfile
	nurses   map[uint]*entity.NurseProfile
}

func newMemStore() *memStore {
	return &memStore{
		nextID:   1,
		users:    make(map[uint]*entity.User),
		doctors:  make(map[uint]*entity.DoctorProfile),
		patients: make(map[uint]*entity.PatientProfile),
		nurses:   make(map[uint]*entity.NurseProfile),
	}
}

type memSnapshot struct {
	nextID   uint
	users    map[uint]*entity.User
	doctors  map[uint]*entity.DoctorProfile
	patients map[uint]*entity.PatientProfile
	nurses   map[uint]*entity.NurseProfile
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		nextID:   s.nextID,
		users:    make(map[uint]*entity.User, len(s.users)),
		doctors:  make(map[uint]*entity.DoctorProfile, len(s.doctors)),
		patients: make(map[uint]*entity.PatientProfile, len(s.patients)),
		nurses:   make(map[uint]*entity.NurseProfile, len(s.nurses)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.doctors {
		snap.doctors[k] = v
	}
	for k, v := range s.patients {
		snap.patients[k] = v
	}
	for k, v := range s.nurses {
		snap.nurses[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.nextID = snap.nextID
	s.users = snap.users
	s.doctors = snap.doctors
	s.patients = snap.patients
	s.nurses = snap.nurses
}

type fakeTransactor struct {
	store *memStore
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := t.store.snapshot()
	if err := fn(ctx); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type fakeUserRepo struct {
	store     *memStore
	createErr error
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.store.nextID
	r.store.nextID++
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if u, ok := r.store.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	store     *memStore
	createErr error
}

func (r *fakeDoctorRepo) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.doctors[profile.UserID] = profile
	return nil
}

func (r *fakeDoctorRepo) FindByUserID(ctx context.Context, userID uint) (*entity.DoctorProfile, error) {
	if p, ok := r.store.doctors[userID]; ok {
		return p, nil
	}
	return nil, nil
}

type fakePatientRepo struct {
	store     *memStore
	createErr error
}

func (r *fakePatientRepo) Create(ctx context.Context, profile *entity.PatientProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.patients[profile.UserID] = profile
	return nil
}

func (r *fakePatientRepo) FindByUserID(ctx context.Context, userID uint) (*entity.PatientProfile, error) {
	if p, ok := r.store.patients[userID]; ok {
		return p, nil
	}
	return nil, nil
}

type fakeNurseRepo struct {
	store     *memStore
	createErr error
}

func (r *fakeNurseRepo) Create(ctx context.Context, profile *entity.NurseProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.store.nurses[profile.UserID] = profile
	return nil
}

func (r *fakeNurseRepo) FindByUserID(ctx context.Context, userID uint) (*entity.NurseProfile, error) {
	if p, ok := r.store.nurses[userID]; ok {
		return p, nil
	}
	return nil, nil
}

type fakeSessionStore struct {
	byUser  map[uint]string
	byToken map[string]uint
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		byUser:  make(map[uint]string),
		byToken: make(map[string]uint),
	}
}

func (s *fakeSessionStore) Find(ctx context.Context, userID uint) (string, error) {
	return s.byUser[userID], nil
}

func (s *fakeSessionStore) FindUserID(ctx context.Context, token string) (uint, error) {
	return s.byToken[token], nil
}

func (s *fakeSessionStore) Save(ctx context.Context, userID uint, token string) (string, error) {
	if existing, ok := s.byUser[userID]; ok {
		return existing, nil
	}
	s.byUser[userID] = token
	s.byToken[token] = userID
	return token, nil
}

func (s *fakeSessionStore) Delete(ctx context.Context, userID uint, token string) error {
	delete(s.byUser, userID)
	delete(s.byToken, token)
	return nil
}
