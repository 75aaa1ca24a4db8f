package forms

import (
	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// Mensajes de validación por campo. Son contrato con la UI: se pintan
// junto al input correspondiente, tal cual.
const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountPositive = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgNameRequired   = "Name is required."
	MsgInvalidEmail   = "Invalid email address."
	MsgInvalidURL     = "Invalid URL."
)

// rule predicado de validación con su mensaje asociado.
type rule struct {
	check   func(v string) bool
	message string
}

// fieldSpec reglas de un campo. Un campo opcional ausente (o vacío) se
// salta sin error; si viene con valor, sus reglas aplican igual.
type fieldSpec struct {
	name     string
	optional bool
	rules    []rule
}

// Schema esquema de validación de una operación. La validación es total y
// ansiosa: se evalúan todos los campos y se acumulan todos los fallos, de
// modo que la UI pueda resaltar cada input inválido de una sola vez.
type Schema []fieldSpec

// Validate recorre todos los campos y devuelve los mensajes de las reglas
// que fallaron, por campo y en orden. Mapa vacío (nil) significa válido.
func (s Schema) Validate(form FormData) map[string][]string {
	var errs map[string][]string
	for _, f := range s {
		v := form.Get(f.name)
		if f.optional && v == "" {
			continue
		}
		for _, r := range f.rules {
			if r.check(v) {
				continue
			}
			if errs == nil {
				errs = make(map[string][]string)
			}
			errs[f.name] = append(errs[f.name], r.message)
		}
	}
	return errs
}

func notEmpty(v string) bool {
	return v != ""
}

// positiveAmount acepta strings coercibles a número estrictamente mayor que cero.
func positiveAmount(v string) bool {
	d, err := decimal.NewFromString(v)
	return err == nil && d.IsPositive()
}

func validStatus(v string) bool {
	return v == "pending" || v == "paid"
}

// Esquemas por operación, declarados explícitos (no derivados en runtime)
// para que las reglas sean inspeccionables de forma estática. Las variantes
// create y update omiten los campos asignados por el servidor: id siempre,
// y date en facturas; en update la clave llega fuera del formulario.

var createInvoiceSchema = Schema{
	{name: "customerId", rules: []rule{{notEmpty, MsgSelectCustomer}}},
	{name: "amount", rules: []rule{{positiveAmount, MsgAmountPositive}}},
	{name: "status", rules: []rule{{validStatus, MsgSelectStatus}}},
}

var updateInvoiceSchema = Schema{
	{name: "customerId", rules: []rule{{notEmpty, MsgSelectCustomer}}},
	{name: "amount", rules: []rule{{positiveAmount, MsgAmountPositive}}},
	{name: "status", rules: []rule{{validStatus, MsgSelectStatus}}},
}

var createCustomerSchema = Schema{
	{name: "name", rules: []rule{{notEmpty, MsgNameRequired}}},
	{name: "email", rules: []rule{{govalidator.IsEmail, MsgInvalidEmail}}},
	{name: "image_url", optional: true, rules: []rule{{govalidator.IsURL, MsgInvalidURL}}},
}

var updateCustomerSchema = Schema{
	{name: "name", rules: []rule{{notEmpty, MsgNameRequired}}},
	{name: "email", rules: []rule{{govalidator.IsEmail, MsgInvalidEmail}}},
	{name: "image_url", optional: true, rules: []rule{{govalidator.IsURL, MsgInvalidURL}}},
}

// amountToCents convierte un monto en unidades mayores ya validado a
// centavos: round(amount * 100) exacto, sin pasar por float.
func amountToCents(v string) int64 {
	d, _ := decimal.NewFromString(v)
	return d.Shift(2).Round(0).IntPart()
}
