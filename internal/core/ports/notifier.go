package ports

// Notifier receives the transient outcome messages of domain operations.
// Implementations render them however they like (log lines, toasts); the
// contract is exactly a short title and a longer detail.
type Notifier interface {
	Success(title, detail string)
	Error(title, detail string)
}
