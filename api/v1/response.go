package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/logtide-backend/lib/result"
	"github.com/logtide-backend/utils"
)

// respond eliminates an operation result at the transport boundary: the
// success branch writes the envelope with okStatus, the error branch maps
// the error kind to its fixed HTTP status.
func respond[T any](ctx *gin.Context, okStatus int, res utils.OpResult[T]) {
	result.Match(res,
		func(value T) struct{} {
			ctx.JSON(okStatus, gin.H{
				"status": "success",
				"data":   value,
			})
			return struct{}{}
		},
		func(appErr *utils.AppError) struct{} {
			respondError(ctx, appErr)
			return struct{}{}
		},
	)
}

func respondError(ctx *gin.Context, appErr *utils.AppError) {
	ctx.JSON(appErr.StatusCode(), gin.H{
		"status":  "error",
		"message": appErr.Message,
	})
}

func currentUserID(ctx *gin.Context) string {
	userID, _ := ctx.Get("userId")
	id, _ := userID.(string)
	return id
}

func boundProjectID(ctx *gin.Context) string {
	projectID, _ := ctx.Get("projectId")
	id, _ := projectID.(string)
	return id
}
