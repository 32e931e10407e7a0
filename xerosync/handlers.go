package xerosync

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

// statusForKind maps a cycle failure to an HTTP status. Remote-side faults
// surface as 502, store faults as 500.
func statusForKind(kind ErrorKind) int {
	switch kind {
	case ErrKindFetchFailed, ErrKindInvalidRemoteShape:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// TriggerSyncHandler returns the gin handler behind the on-demand sync route
// for one entity type. label is the human name used in the response message.
func TriggerSyncHandler(engine *Engine, logger *logrus.Logger, entity EntityConfig, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := engine.SyncOnce(c.Request.Context(), entity)
		if err != nil {
			var syncErr *SyncError
			status := http.StatusInternalServerError
			kind := ErrKindPersistFailed
			if errors.As(err, &syncErr) {
				kind = syncErr.Kind
				status = statusForKind(syncErr.Kind)
			}
			config.LogError(logger, moduleName, "TriggerSyncHandler", "on-demand sync failed: "+entity.Name, result, err)
			c.JSON(status, gin.H{
				"status":  status,
				"success": false,
				"error":   string(kind),
				"message": label + " sync failed.",
			})
			return
		}

		if result.Skipped {
			c.JSON(http.StatusOK, gin.H{
				"status":  http.StatusOK,
				"success": true,
				"message": label + " sync already in progress.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   http.StatusOK,
			"success":  true,
			"fetched":  result.Fetched,
			"inserted": result.Inserted,
			"message":  label + " synced successfully.",
		})
	}
}
