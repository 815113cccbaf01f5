package models

type AuditAction string

const (
	AuditCreate      AuditAction = "CREATE"
	AuditUpdate      AuditAction = "UPDATE"
	AuditDelete      AuditAction = "DELETE"
	AuditLogin       AuditAction = "LOGIN"
	AuditLoginFailed AuditAction = "LOGIN_FAILED"
	AuditExport      AuditAction = "EXPORT"
	AuditDownload    AuditAction = "DOWNLOAD"
)

type FileType string

const (
	FileTypeExcel FileType = "excel"
	FileTypePdf   FileType = "pdf"
)
