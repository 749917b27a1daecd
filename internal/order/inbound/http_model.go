package inbound

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type submitOrderResponse struct {
	OK bool `json:"ok"`
}
