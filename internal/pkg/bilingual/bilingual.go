package bilingual

import "fmt"

// Message carries the English/Arabic pair every user-facing error, success
// and notification text must satisfy. Both locales are always populated;
// an empty locale is a construction bug, not a fallback.
type Message struct {
	En string `json:"en" bson:"en"`
	Ar string `json:"ar" bson:"ar"`
}

func New(en, ar string) Message {
	return Message{En: en, Ar: ar}
}

// Newf builds a Message by applying the same arguments to an English and an
// Arabic format string. Templates must consume arguments positionally in the
// same order.
func Newf(enFormat, arFormat string, args ...interface{}) Message {
	return Message{
		En: fmt.Sprintf(enFormat, args...),
		Ar: fmt.Sprintf(arFormat, args...),
	}
}

func (m Message) IsZero() bool {
	return m.En == "" && m.Ar == ""
}

// String returns the English text; used for logs and error chains where a
// single locale is required.
func (m Message) String() string {
	return m.En
}
