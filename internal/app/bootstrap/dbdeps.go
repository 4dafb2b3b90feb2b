// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/hrmslite/internal/app/apiclient"
)

// DBDeps holds back-end dependencies for the app. HRMS Lite keeps no
// storage of its own; the REST backend is its only data source.
type DBDeps struct {
	API *apiclient.Client
}
