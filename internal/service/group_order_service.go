package service

import (
	"strings"

	"github.com/yallaorder-next/internal/constants"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/repository"

	"gorm.io/gorm"
)

// GroupMemberInput is one person's share of a group order.
type GroupMemberInput struct {
	Name  string           `json:"name"`
	Items []OrderLineInput `json:"items"`
}

// CreateGroupOrderInput carries a group order request.
type CreateGroupOrderInput struct {
	UserID           *uint
	CustomerName     string
	Phone            string
	TempPhone        string
	DeliveryLocation string
	NumPeople        int
	Members          []GroupMemberInput
}

// GroupMemberView is one member with their priced lines.
type GroupMemberView struct {
	models.GroupMember
	Items []repository.MemberLine `json:"items"`
}

// GroupOrderView is a group order with the parent order and every member's
// lines resolved.
type GroupOrderView struct {
	models.GroupOrder
	Order   *OrderView        `json:"order"`
	Members []GroupMemberView `json:"members"`
}

// GroupOrderService creates group orders and resolves who ordered what.
type GroupOrderService struct {
	groups repository.GroupOrderRepository
	orders *OrderService
}

// NewGroupOrderService creates the group order service.
func NewGroupOrderService(groups repository.GroupOrderRepository, orders *OrderService) *GroupOrderService {
	return &GroupOrderService{groups: groups, orders: orders}
}

// Create places a group order: one parent order spanning all members'
// lines, plus per-member records linking each member to their lines. The
// payload arrives pre-priced, so each line's subtotal is taken as given
// rather than repriced from the live menu.
func (s *GroupOrderService) Create(in CreateGroupOrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.DeliveryLocation) == "" {
		return nil, ErrMissingFields
	}
	if in.NumPeople < 1 {
		return nil, ErrInvalidNumPeople
	}
	if len(in.Members) == 0 || len(in.Members) != in.NumPeople {
		return nil, ErrMemberItemMismatch
	}

	// Flatten member lines into one order, remembering which member owns
	// which line index.
	var lines []OrderLineInput
	lineOwner := make([]int, 0)
	for mi, member := range in.Members {
		if strings.TrimSpace(member.Name) == "" {
			return nil, ErrMissingFields
		}
		if len(member.Items) == 0 {
			return nil, ErrMemberItemMismatch
		}
		for _, ln := range member.Items {
			lines = append(lines, ln)
			lineOwner = append(lineOwner, mi)
		}
	}

	priced, subtotal, err := s.orders.trustLines(lines)
	if err != nil {
		return nil, err
	}

	order := s.orders.buildOrder(PlaceOrderInput{
		UserID:           in.UserID,
		CustomerName:     in.CustomerName,
		Phone:            in.Phone,
		TempPhone:        in.TempPhone,
		DeliveryLocation: in.DeliveryLocation,
	}, constants.OrderTypeGroup, subtotal)

	_, err = s.orders.createWithFanOut(order, priced, func(tx *gorm.DB, items []models.OrderItem) error {
		txGroups := s.groups.WithTx(tx)

		group := &models.GroupOrder{
			OrderID:   order.ID,
			NumPeople: in.NumPeople,
		}
		if err := txGroups.Create(group); err != nil {
			return err
		}

		memberIDs := make([]uint, len(in.Members))
		for mi, member := range in.Members {
			row := &models.GroupMember{
				GroupOrderID: group.ID,
				MemberName:   strings.TrimSpace(member.Name),
				PersonIndex:  mi + 1,
			}
			if err := txGroups.CreateMember(row); err != nil {
				return err
			}
			memberIDs[mi] = row.ID
		}

		links := make([]models.GroupOrderItem, 0, len(items))
		for li, item := range items {
			links = append(links, models.GroupOrderItem{
				GroupMemberID: memberIDs[lineOwner[li]],
				OrderItemID:   item.ID,
			})
		}
		return txGroups.CreateMemberItems(links)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("group_order_created",
		"order_id", order.ID,
		"num_people", in.NumPeople,
		"total", order.Total.String(),
	)
	return order, nil
}

// Confirm (re-)creates the per-restaurant sub-orders for a group order's
// parent order. The group must exist.
func (s *GroupOrderService) Confirm(orderID uint) ([]ConfirmResult, error) {
	group, err := s.groups.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupOrderNotFound
	}
	return s.orders.ConfirmOrder(group.OrderID)
}

// GetByOrderID returns the group breakdown of an order: the parent order
// plus each member's lines.
func (s *GroupOrderService) GetByOrderID(orderID uint) (*GroupOrderView, error) {
	group, err := s.groups.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupOrderNotFound
	}

	orderView, err := s.orders.GetOrder(group.OrderID)
	if err != nil {
		return nil, err
	}

	members := make([]GroupMemberView, 0, len(group.Members))
	for _, m := range group.Members {
		items, err := s.groups.ListMemberLines(m.ID)
		if err != nil {
			return nil, err
		}
		members = append(members, GroupMemberView{GroupMember: m, Items: items})
	}

	return &GroupOrderView{
		GroupOrder: *group,
		Order:      orderView,
		Members:    members,
	}, nil
}
