package repository

import "github.com/bcrcell/bcr-erp/internal/domain/entity"

// ServiceRepository adalah port persistensi untuk tiket service HP.
type ServiceRepository interface {
	Create(rec *entity.ServiceRecord) error
	GetByID(id string) (*entity.ServiceRecord, error)
	Update(rec *entity.ServiceRecord) error
	List() ([]*entity.ServiceRecord, error)
}
