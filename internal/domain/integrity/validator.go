package integrity

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proyectos-api/internal/domain"
)

// Reference fila referenciada ya resuelta. Role solo se rellena para partners.
type Reference struct {
	ID   string
	Role string
}

// Resolver busca una fila por PK. Devuelve (nil, nil) si no existe.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, id string) (*Reference, error)
}

// Op distingue create (aplica defaults y campos obligatorios) de update (solo campos presentes).
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// Refs valores de FK del payload indexados por nombre de campo. nil o "" significa ausente.
type Refs map[string]*string

// Get devuelve el valor del campo o nil si está ausente.
func (r Refs) Get(field string) *string {
	v, ok := r[field]
	if !ok || v == nil || *v == "" {
		return nil
	}
	return v
}

// Validator valida las FK de una escritura usando la tabla Rules. No escribe nada.
type Validator struct {
	resolver Resolver
	rules    map[Entity][]Rule
}

// NewValidator construye el validador con la tabla de reglas por defecto.
func NewValidator(resolver Resolver) *Validator {
	return &Validator{resolver: resolver, rules: Rules}
}

// ApplyDefaults rellena con actorID los campos DefaultsToActor ausentes (solo en create).
// Devuelve un mapa nuevo; no modifica refs.
func (v *Validator) ApplyDefaults(ent Entity, op Op, refs Refs, actorID string) Refs {
	out := make(Refs, len(refs))
	for k, val := range refs {
		out[k] = val
	}
	if op != OpCreate || actorID == "" {
		return out
	}
	for _, rule := range v.rules[ent] {
		if rule.DefaultsToActor && out.Get(rule.Field) == nil {
			id := actorID
			out[rule.Field] = &id
		}
	}
	return out
}

// Validate comprueba cada regla de la entidad en orden y devuelve el primer error.
// Errores de validación: *domain.FieldError. Errores del resolver se propagan envueltos.
func (v *Validator) Validate(ctx context.Context, ent Entity, op Op, refs Refs) error {
	rules, ok := v.rules[ent]
	if !ok {
		return fmt.Errorf("integrity: entidad sin reglas: %s", ent)
	}
	for _, rule := range rules {
		val := refs.Get(rule.Field)
		if val == nil {
			_, present := refs[rule.Field]
			if rule.Required && (op == OpCreate || present) {
				return domain.Invalid(rule.Field, "", "%s is required", rule.Field)
			}
			continue
		}
		if err := v.check(ctx, rule, *val); err != nil {
			return err
		}
	}
	return nil
}

// Prepare aplica defaults del actor y valida. Devuelve las refs efectivas a persistir.
func (v *Validator) Prepare(ctx context.Context, ent Entity, op Op, refs Refs, actorID string) (Refs, error) {
	eff := v.ApplyDefaults(ent, op, refs, actorID)
	if err := v.Validate(ctx, ent, op, eff); err != nil {
		return nil, err
	}
	return eff, nil
}

func (v *Validator) check(ctx context.Context, rule Rule, id string) error {
	ref, err := v.resolver.Resolve(ctx, rule.Target, id)
	if err != nil {
		return fmt.Errorf("integrity: resolver %s %s: %w", rule.Target, id, err)
	}
	if ref == nil {
		return domain.Invalid(rule.Field, id, "%s %s does not reference an existing %s", rule.Field, id, rule.Target)
	}
	if rule.Role != "" && ref.Role != rule.Role {
		return domain.Invalid(rule.Field, id, "%s %s is not a %s (role=%s)", rule.Field, id, rule.Role, ref.Role)
	}
	return nil
}
