package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/caffeinepub/minecraft-rank-store/api"
	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
	"github.com/caffeinepub/minecraft-rank-store/services/checkout"
	"github.com/caffeinepub/minecraft-rank-store/services/orders"
	"github.com/caffeinepub/minecraft-rank-store/services/profile"
	"github.com/caffeinepub/minecraft-rank-store/services/ranks"
	"github.com/caffeinepub/minecraft-rank-store/validator"
)

// ensure that we've conformed to the `ServerInterface` with a compile-time check
var _ api.StrictServerInterface = (*Server)(nil)

type Server struct {
	RankService     ranks.Service
	OrderService    orders.Service
	CartService     cart.Service
	CheckoutService checkout.Service
	ProfileService  profile.Service
}

func NewServer(
	rankService ranks.Service,
	orderService orders.Service,
	cartService cart.Service,
	checkoutService checkout.Service,
	profileService profile.Service,
) Server {
	return Server{
		RankService:     rankService,
		OrderService:    orderService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		ProfileService:  profileService,
	}
}

func (s Server) GetPing(_ context.Context, _ api.GetPingRequestObject) (api.GetPingResponseObject, error) {
	return api.GetPing200JSONResponse{Ping: "pong"}, nil
}

func (s Server) GetRanks(ctx context.Context, _ api.GetRanksRequestObject) (api.GetRanksResponseObject, error) {
	result, err := s.RankService.GetActiveRanks(ctx)
	if err != nil {
		return api.GetRanks502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch ranks")}, nil
	}
	return api.GetRanks200JSONResponse(api.FromBackendRanks(result)), nil
}

func (s Server) GetRank(ctx context.Context, request api.GetRankRequestObject) (api.GetRankResponseObject, error) {
	rank, err := s.RankService.GetRank(ctx, request.RankId)
	if err != nil {
		return api.GetRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch rank")}, nil
	}
	if rank == nil {
		return api.GetRank404JSONResponse{NotFoundJSONResponse: notFound("rank not found")}, nil
	}
	return api.GetRank200JSONResponse(api.FromBackendRank(*rank)), nil
}

func (s Server) GetCart(ctx context.Context, _ api.GetCartRequestObject) (api.GetCartResponseObject, error) {
	return api.GetCart200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) ClearCart(ctx context.Context, _ api.ClearCartRequestObject) (api.ClearCartResponseObject, error) {
	s.sessionCart(ctx).Clear()
	return api.ClearCart200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) AddCartItem(ctx context.Context, request api.AddCartItemRequestObject) (api.AddCartItemResponseObject, error) {
	rank, err := s.RankService.GetRank(ctx, request.Body.RankId)
	if err != nil {
		return api.AddCartItem502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch rank")}, nil
	}
	if rank == nil {
		return api.AddCartItem404JSONResponse{NotFoundJSONResponse: notFound("rank not found")}, nil
	}
	s.sessionCart(ctx).AddItem(*rank)
	return api.AddCartItem200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) RemoveCartItem(ctx context.Context, request api.RemoveCartItemRequestObject) (api.RemoveCartItemResponseObject, error) {
	s.sessionCart(ctx).RemoveItem(request.RankId)
	return api.RemoveCartItem200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) OpenCartDrawer(ctx context.Context, _ api.OpenCartDrawerRequestObject) (api.OpenCartDrawerResponseObject, error) {
	s.sessionCart(ctx).Open()
	return api.OpenCartDrawer200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) CloseCartDrawer(ctx context.Context, _ api.CloseCartDrawerRequestObject) (api.CloseCartDrawerResponseObject, error) {
	s.sessionCart(ctx).Close()
	return api.CloseCartDrawer200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) ToggleCartDrawer(ctx context.Context, _ api.ToggleCartDrawerRequestObject) (api.ToggleCartDrawerResponseObject, error) {
	s.sessionCart(ctx).Toggle()
	return api.ToggleCartDrawer200JSONResponse{CartJSONResponse: s.cartView(ctx)}, nil
}

func (s Server) Checkout(ctx context.Context, request api.CheckoutRequestObject) (api.CheckoutResponseObject, error) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return api.Checkout401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	}
	username := strings.TrimSpace(request.Body.MinecraftUsername)
	if username == "" {
		return api.Checkout400JSONResponse{BadRequestJSONResponse: badRequest("minecraft username is required")}, nil
	}
	store := s.sessionCart(ctx)
	if store.Size() == 0 {
		return api.Checkout400JSONResponse{BadRequestJSONResponse: badRequest("cart is empty")}, nil
	}

	// The cart is cleared on success, so capture the total first.
	total := store.Total()
	orderIds, err := s.CheckoutService.PlaceOrders(ctx, access.AccessToken, store, username)
	if err != nil {
		return api.Checkout502JSONResponse{UpstreamFailureJSONResponse: upstream("checkout failed")}, nil
	}
	return api.Checkout200JSONResponse{OrderIds: orderIds, Total: total}, nil
}

func (s Server) GetOrders(ctx context.Context, request api.GetOrdersRequestObject) (api.GetOrdersResponseObject, error) {
	username := ""
	if request.Params.Username != nil {
		username = *request.Params.Username
	}
	result, err := s.OrderService.GetOrdersByUsername(ctx, username)
	if err != nil {
		return api.GetOrders502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch orders")}, nil
	}
	return api.GetOrders200JSONResponse{OrdersJSONResponse: api.FromBackendOrders(result)}, nil
}

func (s Server) GetOrder(ctx context.Context, request api.GetOrderRequestObject) (api.GetOrderResponseObject, error) {
	order, err := s.OrderService.GetOrder(ctx, request.OrderId)
	if err != nil {
		return api.GetOrder502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch order")}, nil
	}
	if order == nil {
		return api.GetOrder404JSONResponse{NotFoundJSONResponse: notFound("order not found")}, nil
	}
	return api.GetOrder200JSONResponse(api.FromBackendOrder(*order)), nil
}

func (s Server) GetProfile(ctx context.Context, _ api.GetProfileRequestObject) (api.GetProfileResponseObject, error) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return api.GetProfile401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	}
	p, err := s.ProfileService.GetCallerProfile(ctx, access.AccessToken, access.Principal)
	if err != nil {
		return api.GetProfile502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch profile")}, nil
	}
	if p == nil {
		return api.GetProfile404JSONResponse{NotFoundJSONResponse: notFound("no profile saved")}, nil
	}
	return api.GetProfile200JSONResponse(api.FromBackendProfile(*p)), nil
}

func (s Server) SaveProfile(ctx context.Context, request api.SaveProfileRequestObject) (api.SaveProfileResponseObject, error) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return api.SaveProfile401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	}
	err := s.ProfileService.SaveCallerProfile(ctx, access.AccessToken, access.Principal, backend.UserProfile{
		MinecraftUsername: request.Body.MinecraftUsername,
	})
	if err != nil {
		return api.SaveProfile502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to save profile")}, nil
	}
	return api.SaveProfile204Response{}, nil
}

func (s Server) GetMyRole(ctx context.Context, _ api.GetMyRoleRequestObject) (api.GetMyRoleResponseObject, error) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return api.GetMyRole200JSONResponse{Role: string(backend.RoleGuest)}, nil
	}
	role, err := s.ProfileService.Role(ctx, access.AccessToken)
	if err != nil {
		return api.GetMyRole502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch role")}, nil
	}
	return api.GetMyRole200JSONResponse{Role: string(role)}, nil
}

func (s Server) AmIAdmin(ctx context.Context, _ api.AmIAdminRequestObject) (api.AmIAdminResponseObject, error) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return api.AmIAdmin200JSONResponse{IsAdmin: false}, nil
	}
	isAdmin, err := s.ProfileService.IsAdmin(ctx, access.AccessToken)
	if err != nil {
		return api.AmIAdmin502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	return api.AmIAdmin200JSONResponse{IsAdmin: isAdmin}, nil
}

func (s Server) AdminGetOrders(ctx context.Context, _ api.AdminGetOrdersRequestObject) (api.AdminGetOrdersResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminGetOrders401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminGetOrders403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminGetOrders502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	result, err := s.OrderService.GetAllOrders(ctx, access.AccessToken)
	if err != nil {
		return api.AdminGetOrders502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch orders")}, nil
	}
	return api.AdminGetOrders200JSONResponse{OrdersJSONResponse: api.FromBackendOrders(result)}, nil
}

func (s Server) AdminUpdateOrderStatus(ctx context.Context, request api.AdminUpdateOrderStatusRequestObject) (api.AdminUpdateOrderStatusResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminUpdateOrderStatus401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminUpdateOrderStatus403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminUpdateOrderStatus502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	err := s.OrderService.UpdateOrderStatus(ctx, access.AccessToken, request.OrderId, request.Body.Status)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyStatus) {
			return api.AdminUpdateOrderStatus400JSONResponse{BadRequestJSONResponse: badRequest("status must not be empty")}, nil
		}
		return api.AdminUpdateOrderStatus502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to update order status")}, nil
	}
	return api.AdminUpdateOrderStatus204Response{}, nil
}

func (s Server) AdminCreateRank(ctx context.Context, request api.AdminCreateRankRequestObject) (api.AdminCreateRankResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminCreateRank401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminCreateRank403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminCreateRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	if err := s.RankService.CreateRank(ctx, access.AccessToken, api.ToBackendRank(*request.Body)); err != nil {
		return api.AdminCreateRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to create rank")}, nil
	}
	return api.AdminCreateRank201Response{}, nil
}

func (s Server) AdminUpdateRank(ctx context.Context, request api.AdminUpdateRankRequestObject) (api.AdminUpdateRankResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminUpdateRank401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminUpdateRank403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminUpdateRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	rank := api.ToBackendRank(*request.Body)
	// The path names the rank being edited; the body cannot retarget it.
	rank.ID = request.RankId
	if err := s.RankService.UpdateRank(ctx, access.AccessToken, rank); err != nil {
		return api.AdminUpdateRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to update rank")}, nil
	}
	return api.AdminUpdateRank204Response{}, nil
}

func (s Server) AdminDeleteRank(ctx context.Context, request api.AdminDeleteRankRequestObject) (api.AdminDeleteRankResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminDeleteRank401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminDeleteRank403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminDeleteRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	if err := s.RankService.DeleteRank(ctx, access.AccessToken, request.RankId); err != nil {
		return api.AdminDeleteRank502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to delete rank")}, nil
	}
	return api.AdminDeleteRank204Response{}, nil
}

func (s Server) AdminAssignRole(ctx context.Context, request api.AdminAssignRoleRequestObject) (api.AdminAssignRoleResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminAssignRole401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminAssignRole403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminAssignRole502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	err := s.ProfileService.AssignRole(ctx, access.AccessToken, request.Body.User, backend.Role(request.Body.Role))
	if err != nil {
		return api.AdminAssignRole502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to assign role")}, nil
	}
	return api.AdminAssignRole204Response{}, nil
}

func (s Server) AdminGetUserProfile(ctx context.Context, request api.AdminGetUserProfileRequestObject) (api.AdminGetUserProfileResponseObject, error) {
	access, refusal := s.adminAccess(ctx)
	switch refusal {
	case http.StatusUnauthorized:
		return api.AdminGetUserProfile401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	case http.StatusForbidden:
		return api.AdminGetUserProfile403JSONResponse{ForbiddenJSONResponse: forbidden()}, nil
	case http.StatusBadGateway:
		return api.AdminGetUserProfile502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to check admin")}, nil
	}
	p, err := s.ProfileService.GetUserProfile(ctx, access.AccessToken, request.Principal)
	if err != nil {
		return api.AdminGetUserProfile502JSONResponse{UpstreamFailureJSONResponse: upstream("failed to fetch profile")}, nil
	}
	if p == nil {
		return api.AdminGetUserProfile404JSONResponse{NotFoundJSONResponse: notFound("no profile saved")}, nil
	}
	return api.AdminGetUserProfile200JSONResponse(api.FromBackendProfile(*p)), nil
}

// adminAccess pre-filters admin operations for a friendlier refusal.
// This is a convenience, not a security boundary: every admin call
// still goes to the backend, which enforces privilege itself. The
// second return is 0 when access is granted, otherwise the status the
// handler should refuse with.
func (s Server) adminAccess(ctx context.Context) (*validator.Access, int) {
	access, ok := validator.FromContext(ctx)
	if !ok {
		return nil, http.StatusUnauthorized
	}
	isAdmin, err := s.ProfileService.IsAdmin(ctx, access.AccessToken)
	if err != nil {
		return nil, http.StatusBadGateway
	}
	if !isAdmin {
		return nil, http.StatusForbidden
	}
	return access, 0
}

func (s Server) cartView(ctx context.Context) api.CartJSONResponse {
	return api.CartJSONResponse(api.ToCartView(s.sessionCart(ctx)))
}

func unauthorized() api.UnauthorizedJSONResponse {
	return api.UnauthorizedJSONResponse{Error: "login required"}
}

func forbidden() api.ForbiddenJSONResponse {
	return api.ForbiddenJSONResponse{Error: "admin privilege required"}
}

func notFound(msg string) api.NotFoundJSONResponse {
	return api.NotFoundJSONResponse{Error: msg}
}

func badRequest(msg string) api.BadRequestJSONResponse {
	return api.BadRequestJSONResponse{Error: msg}
}

func upstream(msg string) api.UpstreamFailureJSONResponse {
	return api.UpstreamFailureJSONResponse{Error: msg}
}
