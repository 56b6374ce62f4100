package pullbadge

import "errors"

var (
	// ErrInvalidRepositoryURL is returned when text is not a GitHub
	// repository URL of the form https://github.com/owner/repo.
	ErrInvalidRepositoryURL = errors.New("invalid GitHub repository URL")

	// ErrMissingRepository is returned when an operation needs an owner and
	// repo but none has been accepted yet.
	ErrMissingRepository = errors.New("repository owner and name are required")

	// ErrMissingPackageName is returned when the package name is blank.
	ErrMissingPackageName = errors.New("package name is required")

	// ErrInvalidOption is returned by [New] when an [Option] is rejected.
	ErrInvalidOption = errors.New("invalid option")

	// ErrNothingToCopy is reported by [Copy] when the text is blank.
	ErrNothingToCopy = errors.New("nothing to copy")

	// ErrClipboardWrite wraps any failure of a [Clipboard] write.
	ErrClipboardWrite = errors.New("clipboard write failed")
)
