// Package integrity valida la integridad referencial de las escrituras antes de persistir:
// cada FK presente debe apuntar a una fila existente y, si la relación lo exige, con el rol correcto.
//
// Las reglas son declarativas (entidad → campo → tipo referenciado → rol opcional) y las
// consume un único Validator genérico.
package integrity

import "github.com/jhoicas/Proyectos-api/internal/domain/entity"

// Kind tipo de entidad referenciada por una FK. El valor se usa en los mensajes de error.
type Kind string

const (
	KindUser          Kind = "user"
	KindProject       Kind = "project"
	KindTask          Kind = "task"
	KindPartner       Kind = "partner"
	KindProduct       Kind = "product"
	KindPurchaseOrder Kind = "purchase order"
	KindSalesOrder    Kind = "sales order"
	KindInvoice       Kind = "invoice"
	KindVendorBill    Kind = "vendor bill"
)

// Entity entidad que se está escribiendo.
type Entity string

const (
	EntityProject           Entity = "project"
	EntityTask              Entity = "task"
	EntityTaskAssignee      Entity = "task_assignee"
	EntityTimeEntry         Entity = "time_entry"
	EntityExpense           Entity = "expense"
	EntityPartner           Entity = "partner"
	EntityPurchaseOrder     Entity = "purchase_order"
	EntitySalesOrder        Entity = "sales_order"
	EntityInvoice           Entity = "invoice"
	EntityVendorBill        Entity = "vendor_bill"
	EntitySalesOrderItem    Entity = Entity(entity.SalesOrderItem)
	EntityPurchaseOrderItem Entity = Entity(entity.PurchaseOrderItem)
	EntityInvoiceItem       Entity = Entity(entity.InvoiceItem)
	EntityVendorBillItem    Entity = Entity(entity.VendorBillItem)
)

// Rule describe una FK de una entidad.
type Rule struct {
	Field           string
	Target          Kind
	Required        bool
	Role            string // solo para Target == KindPartner
	DefaultsToActor bool   // se rellena con el usuario autenticado si no viene en el create
}

// Rules tabla completa de reglas por entidad. El orden de cada slice es el orden de comprobación.
var Rules = map[Entity][]Rule{
	EntityProject: {
		{Field: "manager_id", Target: KindUser, DefaultsToActor: true},
	},
	EntityTask: {
		{Field: "project_id", Target: KindProject},
		{Field: "created_by", Target: KindUser, DefaultsToActor: true},
	},
	EntityTaskAssignee: {
		{Field: "task_id", Target: KindTask, Required: true},
		{Field: "user_id", Target: KindUser, Required: true},
	},
	EntityTimeEntry: {
		{Field: "user_id", Target: KindUser, DefaultsToActor: true},
		{Field: "task_id", Target: KindTask},
	},
	EntityExpense: {
		{Field: "project_id", Target: KindProject},
		{Field: "user_id", Target: KindUser, DefaultsToActor: true},
	},
	EntityPartner: {
		{Field: "created_by", Target: KindUser, DefaultsToActor: true},
	},
	EntityPurchaseOrder: {
		{Field: "vendor_id", Target: KindPartner, Role: entity.PartnerVendor},
		{Field: "project_id", Target: KindProject},
		{Field: "created_by", Target: KindUser, DefaultsToActor: true},
	},
	EntitySalesOrder: {
		{Field: "partner_id", Target: KindPartner, Role: entity.PartnerCustomer},
		{Field: "project_id", Target: KindProject},
		{Field: "created_by", Target: KindUser, DefaultsToActor: true},
	},
	EntityInvoice: {
		{Field: "sales_order_id", Target: KindSalesOrder, Required: true},
		{Field: "created_by", Target: KindUser, DefaultsToActor: true},
	},
	EntityVendorBill: {
		{Field: "vendor_id", Target: KindPartner, Required: true, Role: entity.PartnerVendor},
		{Field: "purchase_order_id", Target: KindPurchaseOrder, Required: true},
	},
	EntitySalesOrderItem: {
		{Field: "sales_order_id", Target: KindSalesOrder, Required: true},
		{Field: "product_id", Target: KindProduct, Required: true},
	},
	EntityPurchaseOrderItem: {
		{Field: "purchase_order_id", Target: KindPurchaseOrder, Required: true},
		{Field: "product_id", Target: KindProduct, Required: true},
	},
	EntityInvoiceItem: {
		{Field: "invoice_id", Target: KindInvoice, Required: true},
		{Field: "product_id", Target: KindProduct, Required: true},
	},
	EntityVendorBillItem: {
		{Field: "vendor_bill_id", Target: KindVendorBill, Required: true},
		{Field: "product_id", Target: KindProduct, Required: true},
	},
}

// DocumentField devuelve el nombre del campo FK al documento padre de un tipo de línea.
func DocumentField(kind entity.ItemKind) string {
	switch kind {
	case entity.SalesOrderItem:
		return "sales_order_id"
	case entity.PurchaseOrderItem:
		return "purchase_order_id"
	case entity.InvoiceItem:
		return "invoice_id"
	case entity.VendorBillItem:
		return "vendor_bill_id"
	}
	return "document_id"
}
