package forms

import (
	"net/url"
	"strconv"
	"time"
)

// Values es el mapa plano campo -> string que llega de un form submit.
// Ausente y vacío se tratan igual: como valor vacío.
type Values map[string]string

// FromPostForm toma el primer valor de cada campo del form parseado.
func FromPostForm(pf url.Values) Values {
	v := make(Values, len(pf))
	for k := range pf {
		v[k] = pf.Get(k)
	}
	return v
}

func (v Values) Get(name string) string {
	return v[name]
}

// String devuelve el valor tal cual vino (vacío si no vino).
// Los campos requeridos van así: si faltan, el constraint del store
// reporta el error; acá no pre-validamos requiredness.
func (v Values) String(name string) string {
	return v[name]
}

// StringOrNil colapsa vacío a nil. Un opcional nunca se persiste como "".
func (v Values) StringOrNil(name string) any {
	if s := v[name]; s != "" {
		return s
	}
	return nil
}

// StringOr devuelve el valor, o def si vino vacío.
func (v Values) StringOr(name, def string) string {
	if s := v[name]; s != "" {
		return s
	}
	return def
}

// Float parsea float solo si vino algo; vacío/ausente => nil.
// Si no parsea, el string crudo pasa tal cual: el store reporta el error
// de tipo. Nunca convertimos un valor ilegible en 0 silencioso.
func (v Values) Float(name string) any {
	s := v[name]
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}

// Checkbox: "on" => true; cualquier otra cosa, incluida la ausencia, => false.
func (v Values) Checkbox(name string) bool {
	return v[name] == "on"
}

// DateOr devuelve el valor, o la fecha de now en YYYY-MM-DD si vino vacío.
// Solo para defaults de create; en update el campo pasa como vino.
func (v Values) DateOr(name string, now time.Time) string {
	if s := v[name]; s != "" {
		return s
	}
	return now.Format("2006-01-02")
}
