package hashsim

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// invalidArgument - Returns a status error with code InvalidArgument, used for programming contract violations
// such as negative keys or a table size below 1
func invalidArgument(format string, a ...any) error {
	return status.Errorf(codes.InvalidArgument, format, a...)
}

// IsInvalidArgument - Returns true if err is an InvalidArgument status error
func IsInvalidArgument(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}
