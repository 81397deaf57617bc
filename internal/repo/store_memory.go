package repo

import (
	"github.com/Gangesh855/factory-ops/internal/models"
)

type InMemoryStoreRepository struct {
	stores []models.Store
	nextID int
}

func NewInMemoryStoreRepository() *InMemoryStoreRepository {
	return &InMemoryStoreRepository{
		stores: []models.Store{},
		nextID: 1,
	}
}

func (r *InMemoryStoreRepository) Create(store models.Store) (models.Store, error) {
	store.ID = r.nextID
	store.Active = true
	r.nextID++
	r.stores = append(r.stores, store)
	return store, nil
}

func (r *InMemoryStoreRepository) GetAll() ([]models.Store, error) {
	return r.stores, nil
}

func (r *InMemoryStoreRepository) GetByID(id int) (models.Store, error) {
	for _, s := range r.stores {
		if s.ID == id && s.Active {
			return s, nil
		}
	}
	return models.Store{}, ErrStoreNotFound
}

func (r *InMemoryStoreRepository) Clear() {
	r.stores = []models.Store{}
	r.nextID = 1
}
