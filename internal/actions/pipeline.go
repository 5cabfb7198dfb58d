package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelter-admin/internal/forms"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/ports/store"
)

// Pipeline ejecuta las acciones CRUD de una entidad contra el store, con
// el mismo contrato para todas: gate de sesión, decode del form, store,
// resultado normalizado. Ningún fallo sale como panic ni como error
// suelto; siempre sale un Result.
//
// Cada llamada es un request atómico al store; no hay transacción local
// que abarque varias entidades ni estado compartido entre requests.
type Pipeline struct {
	schema Schema
	log    logger.Logger
	now    func() time.Time
}

func New(schema Schema, log logger.Logger) *Pipeline {
	return &Pipeline{
		schema: schema,
		log:    log.With(map[string]any{"table": schema.Table}),
		now:    time.Now,
	}
}

// Load lista la tabla según LoadQuery. Degrada con gracia: un error del
// store devuelve records vacíos más el mensaje, nunca un fallo al caller.
func (p *Pipeline) Load(ctx context.Context, st store.Client) LoadResult {
	rows, err := st.Select(ctx, p.schema.Table, p.schema.LoadQuery)
	if err != nil {
		p.log.Error("load failed", map[string]any{"err": err.Error()})
		return LoadResult{Records: []store.Row{}, Error: storeMessage(err)}
	}
	if rows == nil {
		rows = []store.Row{}
	}
	return LoadResult{Records: rows}
}

// Create: gate de sesión -> decode -> asignar id -> insert -> normalizar.
// Devuelve las filas insertadas para feedback inmediato del caller.
func (p *Pipeline) Create(ctx context.Context, sess Session, f forms.Values) (res Result) {
	defer p.recoverInto(&res, "create")

	if !sess.Active() {
		return failUnauthorized()
	}
	if p.schema.DecodeCreate == nil || p.schema.NewID == nil {
		return failValidation(p.schema.Table + " does not support create")
	}

	record, err := p.schema.DecodeCreate(f, p.now())
	if err != nil {
		return failValidation(err.Error())
	}

	id, err := p.schema.NewID(ctx, sess.Store)
	if err != nil {
		p.log.Error("id allocation failed", map[string]any{"err": err.Error()})
		return normalize(err)
	}
	record[p.schema.IDField] = id

	inserted, err := sess.Store.Insert(ctx, p.schema.Table, record)
	if err != nil {
		p.log.Error("create failed", map[string]any{"err": err.Error()})
		return normalize(err)
	}

	p.log.Info("record created", map[string]any{p.schema.IDField: id})
	return ok(inserted)
}

// Update: gate de sesión -> id del form (requerido, nunca regenerado) ->
// decode del patch -> update filtrado por igualdad de id.
func (p *Pipeline) Update(ctx context.Context, sess Session, f forms.Values) (res Result) {
	defer p.recoverInto(&res, "update")

	if !sess.Active() {
		return failUnauthorized()
	}
	if p.schema.DecodePatch == nil {
		return failValidation(p.schema.Table + " does not support update")
	}

	id, err := p.extractID(f)
	if err != nil {
		// Id ausente es violación de contrato del caller, no un update
		// que matchea cero filas en silencio.
		return failValidation(err.Error())
	}

	patch, err := p.schema.DecodePatch(f, p.now())
	if err != nil {
		return failValidation(err.Error())
	}
	delete(patch, p.schema.IDField) // el id es inmutable; jamás viaja en el patch

	filter := store.Filter{Column: p.schema.IDField, Value: id}
	if err := sess.Store.Update(ctx, p.schema.Table, patch, filter); err != nil {
		p.log.Error("update failed", map[string]any{"err": err.Error()})
		return normalize(err)
	}

	return ok(nil)
}

// Delete: gate de sesión -> id del form -> delete filtrado por igualdad.
// Borrar un id inexistente no es error (cero filas afectadas): la
// operación es idempotente.
func (p *Pipeline) Delete(ctx context.Context, sess Session, f forms.Values) (res Result) {
	defer p.recoverInto(&res, "delete")

	if !sess.Active() {
		return failUnauthorized()
	}

	id, err := p.extractID(f)
	if err != nil {
		return failValidation(err.Error())
	}

	filter := store.Filter{Column: p.schema.IDField, Value: id}
	if err := sess.Store.Delete(ctx, p.schema.Table, filter); err != nil {
		p.log.Error("delete failed", map[string]any{"err": err.Error()})
		return normalize(err)
	}

	return ok(nil)
}

func (p *Pipeline) extractID(f forms.Values) (any, error) {
	raw := strings.TrimSpace(f.Get(p.schema.IDField))
	if raw == "" {
		return nil, fmt.Errorf("%s is required", p.schema.IDField)
	}
	if p.schema.ParseID == nil {
		return raw, nil
	}
	return p.schema.ParseID(raw)
}

// recoverInto convierte un panic inesperado (decode, transporte) en un
// Result 500 genérico: el caller nunca ve un fallo sin manejar.
func (p *Pipeline) recoverInto(res *Result, action string) {
	if r := recover(); r != nil {
		p.log.Error("unexpected panic in "+action, map[string]any{"panic": fmt.Sprint(r)})
		*res = failUnexpected()
	}
}
