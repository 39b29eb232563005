package schema

const ShopEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "shop_event",
	"fields": [
		{"name": "client_id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "query", "type": "string"},
		{"name": "at", "type": "long"}
	]
}`

type ShopEventV1 struct {
	ClientID  string `avro:"client_id"`
	Kind      string `avro:"kind"`
	ProductID int64  `avro:"product_id"`
	Query     string `avro:"query"`
	At        int64  `avro:"at"`
}
