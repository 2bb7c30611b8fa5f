// Package form implements the application record and the session state
// machine for the social support wizard.
//
// # Record
//
// A Record maps field names to string values. The twelve fields are fixed and
// partitioned into three ordered steps:
//   - Personal: fullName, dateOfBirth, address, nationalId, phoneNumber, email
//   - Financial: employmentStatus, monthlyIncome, dependents
//   - Assistance: financialHardship, assistanceNeeded, additionalInfo
//
// Every field key is always present (empty string by default); fields are
// only ever overwritten, never removed.
//
// # Session
//
// A Session owns the current step, the record, and the submission flag. All
// mutation goes through named transitions (SubmitStep, GoBack, SetSubmitting,
// SubmitField, FinalSubmit, Reset); illegal transitions return a typed
// *StateError instead of mutating state.
//
// The session trusts its caller to have validated a step's fields before
// SubmitStep is invoked - it rejects transitions only for step-index reasons,
// never for content reasons.
//
// # Persistence
//
// Every record mutation enqueues a write of the full serialized record to the
// configured store. Writes are applied by a single goroutine in mutation
// order, so an older record can never overwrite a newer one. Store failures
// are logged and otherwise ignored; the in-memory record stays authoritative.
//
// # Usage Example
//
//	sess, err := form.NewSession(store, submitter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	err = sess.SubmitStep(form.StepPersonal, map[string]string{
//	    form.FieldFullName: "Jane Doe",
//	    // ...
//	})
package form
