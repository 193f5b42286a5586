package classifier

const (
	messageSuccess = "The transport has been created."
	messageFailed  = "An error has occurred when creating the transport."
)

var codeMessages = map[Code]string{
	CodePickup:                     "Pickup details have not been entered correctly in the shipping method settings.",
	CodeDelivery:                   "Delivery details have not been entered correctly in the order.",
	CodeItemSets:                   "The products in this order have not been correctly setup. Make sure they all have provider specific dimensions configured.",
	CodeDeliveryAddressLookupError: "The given delivery address is not a valid address.",
}

func (n Notice) Message() string {
	if n.Status == StatusSuccess {
		return messageSuccess
	}
	if msg := Message(Code(n.Code)); msg != "" {
		return messageFailed + " " + msg
	}
	return messageFailed
}

// Message returns the explanation for a failure code, empty when the code needs none.
func Message(code Code) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	if code == "" || code == CodeValidationError {
		return ""
	}
	return "Error message: " + string(code)
}
