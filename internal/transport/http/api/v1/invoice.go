package apiv1

import "time"

type Invoice struct {
	ID               int64         `json:"id"`
	NumeroFactura    string        `json:"numeroFactura"`
	ClienteNombre    string        `json:"clienteNombre"`
	ClienteDocumento string        `json:"clienteDocumento"`
	ClienteEmail     string        `json:"clienteEmail"`
	ClienteTelefono  string        `json:"clienteTelefono"`
	Subtotal         Money         `json:"subtotal"`
	Impuesto         Money         `json:"impuesto"`
	Total            Money         `json:"total"`
	Estado           string        `json:"estado"`
	FechaCreacion    time.Time     `json:"fechaCreacion"`
	FechaPago        *time.Time    `json:"fechaPago"`
	Items            []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	ID             int64  `json:"id"`
	PiezaID        *int64 `json:"piezaId"`
	PiezaNombre    string `json:"piezaNombre"`
	PiezaCodigo    string `json:"piezaCodigo"`
	Cantidad       int    `json:"cantidad"`
	PrecioUnitario Money  `json:"precioUnitario"`
	Subtotal       Money  `json:"subtotal"`
	Descripcion    string `json:"descripcion"`
}

type CreateInvoiceRequest struct {
	// Generated by the server when empty.
	NumeroFactura    string                     `json:"numeroFactura" validate:"max=50"`
	ClienteNombre    string                     `json:"clienteNombre" validate:"required,max=100"`
	ClienteDocumento string                     `json:"clienteDocumento" validate:"max=20"`
	ClienteEmail     string                     `json:"clienteEmail" validate:"omitempty,email,max=100"`
	ClienteTelefono  string                     `json:"clienteTelefono" validate:"max=20"`
	Items            []CreateInvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateInvoiceItemRequest struct {
	PiezaID     int64  `json:"piezaId" validate:"required,gt=0"`
	Cantidad    int    `json:"cantidad" validate:"required,gt=0"`
	Descripcion string `json:"descripcion" validate:"max=200"`
}

type InvoiceStats struct {
	CantidadFacturas     int64 `json:"cantidadFacturas"`
	TotalFacturasPagadas Money `json:"totalFacturasPagadas"`
}

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
