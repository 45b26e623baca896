package repository

import "github.com/jhoicas/sport-stock-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id int64) (*entity.Material, error)
	// List devuelve los materiales ordenados por nombre; nameFilter vacío = todos,
	// si no, filtro por subcadena del nombre sin distinguir mayúsculas.
	List(nameFilter string) ([]*entity.Material, error)
	Update(material *entity.Material) error
	// ApplyDelta suma delta al saldo en una sola sentencia atómica y devuelve la fila
	// actualizada, o nil si el material no existe. Usado dentro de transacciones.
	ApplyDelta(id, delta int64) (*entity.Material, error)
	Delete(id int64) error
}
