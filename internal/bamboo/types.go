package bamboo

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes a JSON string or number into a string. The HR API is
// not consistent about quoting ids and balances.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String implements fmt.Stringer.
func (f FlexString) String() string {
	return string(f)
}

// Person is an employee directory entry.
type Person struct {
	ID          FlexString `json:"id"`
	DisplayName string     `json:"displayName"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	WorkEmail   string     `json:"workEmail"`
	JobTitle    string     `json:"jobTitle,omitempty"`
	Department  string     `json:"department,omitempty"`
}

// Directory is the employee directory response.
type Directory struct {
	Employees []Person `json:"employees"`
}

// FindByEmail returns the first employee whose work email equals email.
func (d *Directory) FindByEmail(email string) (Person, bool) {
	for _, p := range d.Employees {
		if p.WorkEmail == email {
			return p, true
		}
	}
	return Person{}, false
}

// TimeOffBalance is one entry of the time-off calculator.
type TimeOffBalance struct {
	TimeOffType FlexString `json:"timeOffType"`
	Name        string     `json:"name"`
	Units       string     `json:"units"`
	Balance     FlexString `json:"balance"`
	End         string     `json:"end"`
}

// WhosOutTypeHoliday marks company holidays in the who's-out list.
const WhosOutTypeHoliday = "holiday"

// WhosOutEntry is one entry of the who's-out list.
type WhosOutEntry struct {
	ID         FlexString `json:"id"`
	Type       string     `json:"type"` // "timeOff" or "holiday"
	EmployeeID FlexString `json:"employeeId,omitempty"`
	Name       string     `json:"name"`
	Start      string     `json:"start"` // YYYY-MM-DD
	End        string     `json:"end"`   // YYYY-MM-DD
}

// Approver is a person who must approve a time-off request.
type Approver struct {
	UserID      FlexString `json:"userId"`
	DisplayName string     `json:"displayName"`
	EmployeeID  FlexString `json:"employeeId"`
}

// TimeOffRequestResult is the HR system's answer to a submitted request.
type TimeOffRequestResult struct {
	ID        FlexString `json:"id"`
	Approvers []Approver `json:"approvers"`
}

// FirstApprover returns the display name of the first approver, or "".
func (r *TimeOffRequestResult) FirstApprover() string {
	if len(r.Approvers) == 0 {
		return ""
	}
	return r.Approvers[0].DisplayName
}
