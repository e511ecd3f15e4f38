package apiv1

import "time"

type Part struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	Codigo             string    `json:"codigo"`
	Descripcion        string    `json:"descripcion"`
	Precio             Money     `json:"precio"`
	Stock              int       `json:"stock"`
	Marca              string    `json:"marca"`
	Modelo             string    `json:"modelo"`
	Categoria          string    `json:"categoria"`
	FechaRegistro      time.Time `json:"fechaRegistro"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}

// PartRequest is the body of create and full-replace update.
type PartRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=100"`
	Codigo      string `json:"codigo" validate:"required,max=50"`
	Descripcion string `json:"descripcion" validate:"max=200"`
	Precio      *Money `json:"precio" validate:"required,gte=0"`
	Stock       *int   `json:"stock" validate:"required,gte=0"`
	Marca       string `json:"marca" validate:"max=50"`
	Modelo      string `json:"modelo" validate:"max=50"`
	Categoria   string `json:"categoria" validate:"max=50"`
}

type StockMovement struct {
	ID            int64     `json:"id"`
	PiezaID       int64     `json:"piezaId"`
	Tipo          string    `json:"tipo"`
	Cantidad      int       `json:"cantidad"`
	StockAnterior int       `json:"stockAnterior"`
	StockNuevo    int       `json:"stockNuevo"`
	FacturaID     *int64    `json:"facturaId,omitempty"`
	Fecha         time.Time `json:"fecha"`
}
