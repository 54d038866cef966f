package http

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const maxMessageRunes = 500

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type invokeReq struct {
	Message string     `json:"message" example:"7월 30일 오후 2시에 예약해줘"`
	UserID  flexString `json:"userId" swaggertype:"string" example:"42"`
}

func (r invokeReq) validate() error {
	if strings.TrimSpace(r.Message) == "" || strings.TrimSpace(string(r.UserID)) == "" {
		return errMissingFields
	}
	if utf8.RuneCountInString(r.Message) > maxMessageRunes {
		return errMessageTooLong
	}
	return nil
}

type invokeResp struct {
	Response string `json:"response"`
}

type errorResp struct {
	Error string `json:"error"`
}
