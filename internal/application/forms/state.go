// Package forms implementa el patrón validar-ejecutar-reaccionar de las
// acciones de formulario del dashboard: cada acción valida los campos
// enviados contra un esquema, ejecuta exactamente una sentencia de mutación
// y reacciona invalidando el cache de la vista de listado (y redirigiendo
// en create/update).
package forms

// FormData conjunto crudo de campos enviados por un formulario HTML.
type FormData map[string]string

// Get devuelve el valor del campo ("" si no fue enviado).
func (f FormData) Get(name string) string {
	return f[name]
}

// State resultado reportable de una acción fallida: errores por campo
// (en el orden de las reglas) más un mensaje resumen. Nunca se lanza como
// error; se devuelve como dato para que el caller lo pinte en el formulario.
type State struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

// Result resultado explícito de una acción create/update: éxito con
// redirección al listado, o fallo con State. Exactamente uno de los dos
// campos está poblado; la redirección no se modela como excepción de
// control de flujo para que el caller pueda ramificar sin panics.
type Result struct {
	RedirectTo string
	State      *State
}

// Succeeded indica si la acción terminó en redirección.
func (r Result) Succeeded() bool {
	return r.State == nil
}

func redirect(path string) Result {
	return Result{RedirectTo: path}
}

func fail(s State) Result {
	return Result{State: &s}
}
