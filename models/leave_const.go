package models

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

type LeaveType string

const (
	LeaveSick      LeaveType = "sick"
	LeaveVacation  LeaveType = "vacation"
	LeavePersonal  LeaveType = "personal"
	LeaveEmergency LeaveType = "emergency"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveSick, LeaveVacation, LeavePersonal, LeaveEmergency:
		return true
	}
	return false
}
