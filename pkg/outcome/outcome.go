package outcome

// Severity tells the consumer how to present a message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Reason classifies why a mutation was rejected. Empty on success.
type Reason string

const (
	ReasonDuplicateKey        Reason = "duplicate_key"
	ReasonDuplicateNaturalKey Reason = "duplicate_natural_key"
	ReasonNotFound            Reason = "not_found"
	ReasonUnresolvedReference Reason = "unresolved_reference"
	ReasonInvalidField        Reason = "invalid_field"
	ReasonReferenced          Reason = "referenced"
	ReasonPersistenceFailure  Reason = "persistence_failure"
	ReasonStorageError        Reason = "storage_error"
)

// Outcome is the single (message, severity) result of a mutating operation.
// Every add/update/delete yields exactly one, success or not.
type Outcome struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Reason   Reason   `json:"reason,omitempty"`
}

func Success(message string) Outcome {
	return Outcome{Message: message, Severity: SeverityInfo}
}

func Rejected(reason Reason, message string) Outcome {
	return Outcome{Message: message, Severity: SeverityError, Reason: reason}
}

// Blocked is a rejection the user can resolve by changing their selection,
// reported at warning severity.
func Blocked(reason Reason, message string) Outcome {
	return Outcome{Message: message, Severity: SeverityWarning, Reason: reason}
}

// Succeeded reports whether the mutation was applied.
func (o Outcome) Succeeded() bool {
	return o.Reason == ""
}
