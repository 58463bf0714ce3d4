package identity

// ClientInfo документ идентификатора установки (client.json)
type ClientInfo struct {
	ID string `json:"id"`
}
