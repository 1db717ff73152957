package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a caller-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps database and infrastructure errors to a safe code/message
// pair. Sensitive internals stay hidden but the caller gets enough to act on.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "an unexpected error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	// 1. GORM sentinel errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// 2. Constraint violations (Postgres 23xxx class)

	// unique violation (23505)
	if strings.Contains(errStrLower, "duplicate key") || strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStr)
	}

	// foreign key violation (23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStr, context)
	}

	// not-null violation (23502)
	if strings.Contains(errStrLower, "null value") && strings.Contains(errStrLower, "violates not-null constraint") {
		return parseNotNullError(errStr)
	}

	// 3. Network/connectivity failures (object store, DB host)
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "failed to reach an external service, please try again later",
		}
	}

	// 4. Default internal error
	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

func parseDuplicateKeyError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// category name uniqueness
	if strings.Contains(errLower, "categories") || strings.Contains(errLower, "idx_categories_name") {
		return ErrorInfo{
			Code:    CategoryNameExists,
			Message: "a category with this name already exists",
		}
	}

	if strings.Contains(errLower, "pkey") || strings.Contains(errLower, "primary key") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: "the record already exists, please try again",
		}
	}

	return ErrorInfo{
		Code:    ResourceAlreadyExists,
		Message: "the record already exists",
	}
}

func parseForeignKeyError(errStr string, context string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	// deleting a row that is still referenced
	if strings.Contains(errLower, "still referenced") || strings.Contains(errLower, "is still referenced by") {
		if strings.Contains(strings.ToLower(context), "category") {
			return ErrorInfo{
				Code:    ResourceConflict,
				Message: "the category still has products and cannot be deleted",
			}
		}
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "the record is referenced by other data and cannot be deleted",
		}
	}

	// inserting a reference to a missing row
	if strings.Contains(errLower, "category_id") || strings.Contains(errLower, "fk_categories") {
		return ErrorInfo{
			Code:    CategoryNotFound,
			Message: "the referenced category does not exist",
		}
	}
	if strings.Contains(errLower, "product_id") || strings.Contains(errLower, "fk_products") {
		return ErrorInfo{
			Code:    ProductNotFound,
			Message: "the referenced product does not exist",
		}
	}

	return ErrorInfo{
		Code:    ResourceNotFound,
		Message: "a referenced record could not be found",
	}
}

func parseNotNullError(errStr string) ErrorInfo {
	errLower := strings.ToLower(errStr)

	if strings.Contains(errLower, "customer_name") {
		return ErrorInfo{Code: ValidationRequired, Message: "customer name is required"}
	}
	if strings.Contains(errLower, "customer_phone") {
		return ErrorInfo{Code: ValidationRequired, Message: "customer phone is required"}
	}
	if strings.Contains(errLower, "name") {
		return ErrorInfo{Code: ValidationRequired, Message: "name is required"}
	}
	if strings.Contains(errLower, "image_url") {
		return ErrorInfo{Code: ValidationRequired, Message: "image URL is required"}
	}

	return ErrorInfo{
		Code:    ValidationRequired,
		Message: "a required field is missing",
	}
}

// getNotFoundMessage picks a not-found message based on context.
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "category") {
		return "category not found"
	}
	if strings.Contains(contextLower, "product") {
		return "product not found"
	}
	if strings.Contains(contextLower, "order") {
		return "order not found"
	}
	if strings.Contains(contextLower, "reservation") {
		return "reservation not found"
	}
	if strings.Contains(contextLower, "gallery") {
		return "gallery image not found"
	}

	return "the requested record could not be found"
}

// getDefaultErrorMessage picks a generic message based on the operation.
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") {
		return "failed to create the record, please try again later"
	}
	if strings.Contains(contextLower, "update") {
		return "failed to update the record, please try again later"
	}
	if strings.Contains(contextLower, "delete") {
		return "failed to delete the record, please try again later"
	}
	if strings.Contains(contextLower, "upload") {
		return "failed to store the uploaded file, please try again later"
	}

	return "an unexpected error occurred, please try again later"
}

// ParseAndRespond parses err and writes the response in one call.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
