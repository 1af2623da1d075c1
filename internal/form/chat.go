package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ChatMessageRequest struct {
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

func (f *ChatMessageRequest) Validate() error {
	trim(&f.UserName, &f.Message)
	return ValidateStruct(f,
		validation.Field(&f.UserName, validation.Required.Error("error.chat_name_required"), maxRunes(100)),
		validation.Field(&f.Message, required(), maxRunes(2000)),
	)
}
