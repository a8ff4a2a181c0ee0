package entity

// ContractEmail is one message pulled from the contracts mailbox.
type ContractEmail struct {
	UID     uint32
	Subject string
	Body    string
	HTML    bool
}
