package entity

// Client destinatario de la factura.
type Client struct {
	Name    string
	Cedula  string // cédula de ciudadanía, texto libre
	Email   string
	Address string
}
