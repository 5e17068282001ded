package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/authz"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"
)

type ShopController struct {
	shopService services.ShopServiceInterface
}

func NewShopController(shopService services.ShopServiceInterface) *ShopController {
	return &ShopController{shopService: shopService}
}

// ListProducts shows active products to everyone; admins also see inactive
// ones.
func (s *ShopController) ListProducts(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	identity := middleware.IdentityFrom(c)
	includeInactive := identity != nil && identity.Role == authz.RoleAdmin

	products, total, err := s.shopService.ListProducts(c.Request.Context(), page, limit, includeInactive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(products, page, limit, total), "")
}

func (s *ShopController) GetProduct(c *gin.Context) {
	product, err := s.shopService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "")
}

func (s *ShopController) CreateProduct(c *gin.Context) {
	var req request_models.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := s.shopService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product created")
}

func (s *ShopController) UpdateProduct(c *gin.Context) {
	var req request_models.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := s.shopService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product updated")
}

func (s *ShopController) DeleteProduct(c *gin.Context) {
	if err := s.shopService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Product deleted")
}

func (s *ShopController) Checkout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity := middleware.IdentityFrom(c)
	order, err := s.shopService.Checkout(c.Request.Context(), identity.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order placed")
}

func (s *ShopController) MyOrders(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	identity := middleware.IdentityFrom(c)
	orders, total, err := s.shopService.MyOrders(c.Request.Context(), identity.ID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(orders, page, limit, total), "")
}

func (s *ShopController) AllOrders(c *gin.Context) {
	page, limit, err := utils.ParsePagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	orders, total, err := s.shopService.AllOrders(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, utils.NewPagedResult(orders, page, limit, total), "")
}

func (s *ShopController) UpdateOrderStatus(c *gin.Context) {
	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	order, err := s.shopService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "Order status updated")
}
