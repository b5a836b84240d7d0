// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package nba

import (
	"bytes"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var nullLiteral = []byte("null")

// feedText decodes a value the feed may send as a string or a number,
// keeping the text exactly as published. Any other JSON value, null
// included, is empty.
type feedText string

func (value *feedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, nullLiteral):
		*value = ""
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*value = feedText(text)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*value = feedText(data)
	default:
		*value = ""
	}
	return nil
}

// flexInt decodes an integer the feed may send as a number, a numeric
// string, an empty string, or null. Anything unparseable is zero.
type flexInt int

func (value *flexInt) UnmarshalJSON(data []byte) error {
	var text Stat
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	*value = flexInt(text.Int())
	return nil
}

// flexBool decodes a boolean the feed may send as true/false, as the
// strings "true"/"false"/"1"/"0", or not at all.
type flexBool bool

func (value *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			*value = false
			return nil
		}
		data = []byte(unquoted)
	}
	parsed, err := strconv.ParseBool(string(data))
	*value = flexBool(err == nil && parsed)
	return nil
}
