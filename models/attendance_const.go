package models

type AttendanceStatus string

const (
	AttendancePresent  AttendanceStatus = "present"
	AttendanceAbsent   AttendanceStatus = "absent"
	AttendanceHalfDay  AttendanceStatus = "half_day"
	AttendanceLeave    AttendanceStatus = "leave"
	AttendanceOvertime AttendanceStatus = "overtime"
)

// AttendanceStatuses задаёт фиксированный порядок статусов в отчётах
var AttendanceStatuses = []AttendanceStatus{
	AttendancePresent,
	AttendanceHalfDay,
	AttendanceAbsent,
	AttendanceLeave,
	AttendanceOvertime,
}

var attendanceStatusLabel = map[AttendanceStatus]string{
	AttendancePresent:  "Present",
	AttendanceAbsent:   "Absent",
	AttendanceHalfDay:  "Half Day",
	AttendanceLeave:    "Leave",
	AttendanceOvertime: "Overtime",
}

func (s AttendanceStatus) IsValid() bool {
	_, ok := attendanceStatusLabel[s]
	return ok
}

func (s AttendanceStatus) Label() string {
	if label, ok := attendanceStatusLabel[s]; ok {
		return label
	}
	return string(s)
}
