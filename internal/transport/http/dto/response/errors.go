package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Resource not found",
	}

	ErrFileTooLarge = ErrorResponse{
		Status:  "error",
		Error:   "file_too_large",
		Details: "File exceeds the upload size limit",
	}

	ErrUnsupportedFileType = ErrorResponse{
		Status:  "error",
		Error:   "unsupported_file_type",
		Details: "File type is not allowed",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
