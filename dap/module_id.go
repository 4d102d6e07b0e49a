package dap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ModuleID identifies a module by either an integer or a string. It
// re-encodes in the representation it was built or decoded with.
type ModuleID struct {
	num      int
	str      string
	isString bool
}

// IntModuleID returns an integer module identifier.
func IntModuleID(n int) ModuleID { return ModuleID{num: n} }

// StringModuleID returns a string module identifier.
func StringModuleID(s string) ModuleID { return ModuleID{str: s, isString: true} }

// IsString reports whether the identifier is string-valued.
func (id ModuleID) IsString() bool { return id.isString }

// Int returns the integer value and true for integer identifiers.
func (id ModuleID) Int() (int, bool) {
	if id.isString {
		return 0, false
	}
	return id.num, true
}

func (id ModuleID) String() string {
	if id.isString {
		return id.str
	}
	return strconv.Itoa(id.num)
}

func (id ModuleID) MarshalJSON() ([]byte, error) {
	if id.isString {
		return json.Marshal(id.str)
	}
	return json.Marshal(id.num)
}

func (id *ModuleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringModuleID(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("module id must be an integer or a string: %w", err)
	}
	*id = IntModuleID(n)
	return nil
}
