package controllers

import (
	"errors"
	"fmt"
	"itemstore/config"
	"itemstore/database"
	"itemstore/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func CreateItem(context *gin.Context) {
	var params CreateItemParams
	field := config.Cfg.Item.Field

	if err := context.ShouldBindWith(&params, binding.Form); err != nil {
		context.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: err.Error()})
		context.Abort()
		return
	}
	value := params.Field(field)
	if value == nil {
		context.JSON(http.StatusUnprocessableEntity,
			DetailResponse{Detail: fmt.Sprintf("missing required parameter %q", field)})
		context.Abort()
		return
	}

	item := models.Item{ID: *params.ID, Name: *params.Name}
	item.SetField(field, *value)

	// duplicate ids surface here as a storage failure
	if err := item.CreateItem(database.Session(context)); err != nil {
		abortWithServerError(context, err)
		return
	}
	context.JSON(http.StatusOK, NewItemSchema(item, field))
}

func ListItems(context *gin.Context) {
	var params ListItemsParams
	field := config.Cfg.Item.Field

	if err := context.ShouldBindQuery(&params); err != nil {
		context.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: err.Error()})
		context.Abort()
		return
	}

	items, err := models.ListItems(database.Session(context), field, params.Skip, params.Limit)
	if err != nil {
		abortWithServerError(context, err)
		return
	}
	response := make([]interface{}, 0, len(items))
	for _, item := range items {
		response = append(response, NewItemSchema(item, field))
	}
	context.JSON(http.StatusOK, response)
}

func GetItem(context *gin.Context) {
	var uri ItemUri
	if err := context.ShouldBindUri(&uri); err != nil {
		context.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: err.Error()})
		context.Abort()
		return
	}

	item, err := models.GetItemByID(database.Session(context), uri.ItemID)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			context.JSON(http.StatusNotFound, DetailResponse{Detail: ItemNotFound})
			context.Abort()
			return
		}
		abortWithServerError(context, err)
		return
	}
	context.JSON(http.StatusOK, NewItemSchema(item, config.Cfg.Item.Field))
}

func DeleteItem(context *gin.Context) {
	var uri ItemUri
	if err := context.ShouldBindUri(&uri); err != nil {
		context.JSON(http.StatusUnprocessableEntity, DetailResponse{Detail: err.Error()})
		context.Abort()
		return
	}

	session := database.Session(context)
	item, err := models.GetItemByID(session, uri.ItemID)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			context.JSON(http.StatusNotFound, DetailResponse{Detail: ItemNotFoundOnDelete})
			context.Abort()
			return
		}
		abortWithServerError(context, err)
		return
	}

	if err = item.DeleteItem(session); err != nil {
		abortWithServerError(context, err)
		return
	}
	context.JSON(http.StatusOK, DetailResponse{Detail: ItemDeleted})
}

// abortWithServerError records err for the access log and answers with a
// generic 500.
func abortWithServerError(context *gin.Context, err error) {
	_ = context.Error(err)
	context.JSON(http.StatusInternalServerError, DetailResponse{Detail: InternalServerError})
	context.Abort()
}
