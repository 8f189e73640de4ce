package usecase

import (
	"github.com/I2oman/HospitalAssessment/pkg/outcome"

	"github.com/sirupsen/logrus"
)

// msgStorageError is the one user-facing message for underlying storage
// faults. The cause is logged, never classified further for the caller.
const msgStorageError = "Database error occurred. Please try again."

const dateLayout = "2006-01-02"

func storageFailure(log *logrus.Logger, op string, err error) outcome.Outcome {
	log.Warnf("%s: %+v", op, err)
	return outcome.Rejected(outcome.ReasonStorageError, msgStorageError)
}
