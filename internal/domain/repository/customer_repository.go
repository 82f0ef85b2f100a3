package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// CustomerRepository adalah port persistensi untuk pelanggan service.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Delete(id string) error
	List() ([]*entity.Customer, error)
}
