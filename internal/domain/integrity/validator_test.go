package integrity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/integrity"
)

type fakeResolver struct {
	rows  map[integrity.Kind]map[string]string // kind -> id -> role
	calls int
	err   error
}

func (f *fakeResolver) Resolve(_ context.Context, kind integrity.Kind, id string) (*integrity.Reference, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	role, ok := f.rows[kind][id]
	if !ok {
		return nil, nil
	}
	return &integrity.Reference{ID: id, Role: role}, nil
}

func newResolver() *fakeResolver {
	return &fakeResolver{rows: map[integrity.Kind]map[string]string{
		integrity.KindUser:       {"u-1": "", "u-2": ""},
		integrity.KindProject:    {"p-1": ""},
		integrity.KindPartner:    {"7": "vendor", "8": "customer"},
		integrity.KindProduct:    {"prod-1": ""},
		integrity.KindSalesOrder: {"so-1": ""},
	}}
}

func str(s string) *string { return &s }

func fieldErr(t *testing.T, err error) *domain.FieldError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	return fe
}

func TestValidate_PartnerConRolIncorrecto(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	err := v.Validate(context.Background(), integrity.EntitySalesOrder, integrity.OpCreate, integrity.Refs{
		"partner_id": str("7"),
	})

	fe := fieldErr(t, err)
	assert.Equal(t, "partner_id", fe.Field)
	assert.Equal(t, "7", fe.Value)
	assert.Equal(t, "partner_id 7 is not a customer (role=vendor)", fe.Message)
}

func TestValidate_FKInexistente(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	err := v.Validate(context.Background(), integrity.EntityPurchaseOrder, integrity.OpCreate, integrity.Refs{
		"vendor_id": str("42"),
	})

	fe := fieldErr(t, err)
	assert.Equal(t, "vendor_id 42 does not reference an existing partner", fe.Message)
}

func TestValidate_CampoObligatorio(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	err := v.Validate(context.Background(), integrity.EntityInvoice, integrity.OpCreate, integrity.Refs{})

	fe := fieldErr(t, err)
	assert.Equal(t, "sales_order_id", fe.Field)
	assert.Equal(t, "sales_order_id is required", fe.Message)
}

func TestValidate_UpdateSoloCamposPresentes(t *testing.T) {
	r := newResolver()
	v := integrity.NewValidator(r)

	// sales_order_id ausente en un update: queda sin cambios.
	err := v.Validate(context.Background(), integrity.EntityInvoice, integrity.OpUpdate, integrity.Refs{})
	assert.NoError(t, err)
	assert.Equal(t, 0, r.calls)

	// presente pero vacío: se intenta borrar un campo obligatorio.
	err = v.Validate(context.Background(), integrity.EntityInvoice, integrity.OpUpdate, integrity.Refs{"sales_order_id": str("")})
	fe := fieldErr(t, err)
	assert.Equal(t, "sales_order_id", fe.Field)
}

func TestValidate_OpcionalAusenteNoConsulta(t *testing.T) {
	r := newResolver()
	v := integrity.NewValidator(r)

	err := v.Validate(context.Background(), integrity.EntityTask, integrity.OpCreate, integrity.Refs{"project_id": nil})

	assert.NoError(t, err)
	assert.Equal(t, 0, r.calls)
}

func TestValidate_LineaDeFactura(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	err := v.Validate(context.Background(), integrity.EntitySalesOrderItem, integrity.OpCreate, integrity.Refs{
		"sales_order_id": str("so-1"),
		"product_id":     str("prod-x"),
	})

	fe := fieldErr(t, err)
	assert.Equal(t, "product_id prod-x does not reference an existing product", fe.Message)
}

func TestValidate_ErrorDelResolverSePropaga(t *testing.T) {
	boom := errors.New("conexión perdida")
	r := newResolver()
	r.err = boom
	v := integrity.NewValidator(r)

	err := v.Validate(context.Background(), integrity.EntityProject, integrity.OpCreate, integrity.Refs{"manager_id": str("u-1")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidate_Idempotente(t *testing.T) {
	v := integrity.NewValidator(newResolver())
	refs := integrity.Refs{"vendor_id": str("7"), "project_id": str("p-1"), "created_by": str("u-1")}

	first := v.Validate(context.Background(), integrity.EntityPurchaseOrder, integrity.OpCreate, refs)
	second := v.Validate(context.Background(), integrity.EntityPurchaseOrder, integrity.OpCreate, refs)

	assert.NoError(t, first)
	assert.NoError(t, second)
	assert.Equal(t, "7", *refs["vendor_id"])
}

func TestValidate_EntidadDesconocida(t *testing.T) {
	v := integrity.NewValidator(newResolver())
	err := v.Validate(context.Background(), integrity.Entity("warehouse"), integrity.OpCreate, integrity.Refs{})
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	v := integrity.NewValidator(newResolver())
	in := integrity.Refs{"project_id": str("p-1")}

	out := v.ApplyDefaults(integrity.EntityExpense, integrity.OpCreate, in, "u-2")

	require.NotNil(t, out.Get("user_id"))
	assert.Equal(t, "u-2", *out.Get("user_id"))
	assert.Nil(t, in.Get("user_id"), "el mapa de entrada no se modifica")

	explicit := v.ApplyDefaults(integrity.EntityExpense, integrity.OpCreate, integrity.Refs{"user_id": str("u-1")}, "u-2")
	assert.Equal(t, "u-1", *explicit.Get("user_id"))

	update := v.ApplyDefaults(integrity.EntityExpense, integrity.OpUpdate, integrity.Refs{}, "u-2")
	assert.Nil(t, update.Get("user_id"))

	anon := v.ApplyDefaults(integrity.EntityExpense, integrity.OpCreate, integrity.Refs{}, "")
	assert.Nil(t, anon.Get("user_id"))
}

func TestPrepare_ActorInexistente(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	_, err := v.Prepare(context.Background(), integrity.EntityPartner, integrity.OpCreate, integrity.Refs{}, "u-borrado")

	fe := fieldErr(t, err)
	assert.Equal(t, "created_by", fe.Field)
}

func TestPrepare_OK(t *testing.T) {
	v := integrity.NewValidator(newResolver())

	refs, err := v.Prepare(context.Background(), integrity.EntityPurchaseOrder, integrity.OpCreate, integrity.Refs{"vendor_id": str("7")}, "u-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", *refs.Get("created_by"))
}

func TestRules_TodasLasEntidadesDeLinea(t *testing.T) {
	for _, e := range []integrity.Entity{
		integrity.EntitySalesOrderItem, integrity.EntityPurchaseOrderItem,
		integrity.EntityInvoiceItem, integrity.EntityVendorBillItem,
	} {
		rules := integrity.Rules[e]
		require.Len(t, rules, 2, string(e))
		assert.True(t, rules[0].Required)
		assert.Equal(t, "product_id", rules[1].Field)
	}
}

// Resolver con una fila válida por tipo y un partner por rol.
func fullResolver() *fakeResolver {
	r := &fakeResolver{rows: map[integrity.Kind]map[string]string{}}
	for _, rules := range integrity.Rules {
		for _, rule := range rules {
			r.rows[rule.Target] = map[string]string{"ok": ""}
		}
	}
	r.rows[integrity.KindPartner] = map[string]string{
		entity.PartnerVendor:   entity.PartnerVendor,
		entity.PartnerCustomer: entity.PartnerCustomer,
	}
	return r
}

func validID(rule integrity.Rule) string {
	if rule.Target != integrity.KindPartner {
		return "ok"
	}
	if rule.Role == "" {
		return entity.PartnerVendor
	}
	return rule.Role
}

func otherRole(role string) string {
	if role == entity.PartnerVendor {
		return entity.PartnerCustomer
	}
	return entity.PartnerVendor
}

// validRefs todas las FK de la entidad apuntando a filas existentes, salvo skip.
func validRefs(ent integrity.Entity, skip string) integrity.Refs {
	refs := integrity.Refs{}
	for _, rule := range integrity.Rules[ent] {
		if rule.Field != skip {
			refs[rule.Field] = str(validID(rule))
		}
	}
	return refs
}

func TestRules_ReferenciasValidasPasan(t *testing.T) {
	v := integrity.NewValidator(fullResolver())
	for ent := range integrity.Rules {
		t.Run(string(ent), func(t *testing.T) {
			assert.NoError(t, v.Validate(context.Background(), ent, integrity.OpCreate, validRefs(ent, "")))
		})
	}
}

func TestRules_CadaFKInexistenteNombraElCampo(t *testing.T) {
	v := integrity.NewValidator(fullResolver())
	for ent, rules := range integrity.Rules {
		for _, rule := range rules {
			t.Run(string(ent)+"/"+rule.Field, func(t *testing.T) {
				refs := validRefs(ent, rule.Field)
				refs[rule.Field] = str("no-existe")

				err := v.Validate(context.Background(), ent, integrity.OpCreate, refs)

				fe := fieldErr(t, err)
				assert.Equal(t, rule.Field, fe.Field)
				assert.Equal(t, "no-existe", fe.Value)
				assert.Contains(t, fe.Message, string(rule.Target))
			})
		}
	}
}

func TestRules_CadaFKConRolRechazaElRolContrario(t *testing.T) {
	v := integrity.NewValidator(fullResolver())
	checked := 0
	for ent, rules := range integrity.Rules {
		for _, rule := range rules {
			if rule.Role == "" {
				continue
			}
			checked++
			t.Run(string(ent)+"/"+rule.Field, func(t *testing.T) {
				wrong := otherRole(rule.Role)
				refs := validRefs(ent, rule.Field)
				refs[rule.Field] = str(wrong)

				err := v.Validate(context.Background(), ent, integrity.OpCreate, refs)

				fe := fieldErr(t, err)
				assert.Equal(t, rule.Field, fe.Field)
				assert.Contains(t, fe.Message, "is not a "+rule.Role)
			})
		}
	}
	// purchase_order.vendor_id, vendor_bill.vendor_id, sales_order.partner_id
	assert.Equal(t, 3, checked)
}
