package service

import (
	"testing"

	"grocery-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newPaymentServiceFixture() (*MockDirectoryRepository, *MockOrderRepository, *MockDeliveryAssigner, *MockEventPublisher, PaymentService) {
	mockDirectory := new(MockDirectoryRepository)
	mockOrders := new(MockOrderRepository)
	mockAssigner := new(MockDeliveryAssigner)
	mockEvents := new(MockEventPublisher)
	svc := NewPaymentService(mockDirectory, mockOrders, mockAssigner, mockEvents)
	return mockDirectory, mockOrders, mockAssigner, mockEvents, svc
}

func paymentHandler() *models.Employee {
	return &models.Employee{ID: 6, Name: "Payment Desk", Role: models.RolePaymentHandler}
}

func bankOrderInReview() *models.Order {
	return &models.Order{
		ID:            10,
		CustomerID:    1,
		Status:        models.OrderPaymentReview,
		PaymentMethod: models.PaymentMethodBank,
		PaymentStatus: models.PaymentPending,
		Total:         25,
	}
}

func TestApprove_TransitionsToPlacedAndAssignsDelivery(t *testing.T) {
	mockDirectory, mockOrders, mockAssigner, mockEvents, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(6)).Return(paymentHandler(), nil)
	mockOrders.On("FindByID", uint(10)).Return(bankOrderInReview(), nil)
	mockAssigner.On("Assign").Return(&models.Employee{ID: 3, Name: "Rider", Role: models.RoleDelivery}, nil)
	mockOrders.On("Save", mock.AnythingOfType("*models.Order")).Return(nil)
	mockEvents.On("PublishOrderEvent", EventPaymentApproved, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Approve(10, 6)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderPlaced, order.Status)
	assert.Equal(t, models.PaymentApproved, order.PaymentStatus)
	assert.Equal(t, uint(6), *order.ApprovedBy)
	assert.NotNil(t, order.ApprovedAt)
	assert.Equal(t, uint(3), *order.DeliveryEmployeeID)

	mockOrders.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestApprove_NoDeliveryStaffStillApproves(t *testing.T) {
	mockDirectory, mockOrders, mockAssigner, mockEvents, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(6)).Return(paymentHandler(), nil)
	mockOrders.On("FindByID", uint(10)).Return(bankOrderInReview(), nil)
	mockAssigner.On("Assign").Return(nil, nil)
	mockOrders.On("Save", mock.AnythingOfType("*models.Order")).Return(nil)
	mockEvents.On("PublishOrderEvent", EventPaymentApproved, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Approve(10, 6)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderPlaced, order.Status)
	assert.Nil(t, order.DeliveryEmployeeID)
}

func TestApprove_RequiresPaymentHandlerRole(t *testing.T) {
	mockDirectory, mockOrders, _, _, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(3)).
		Return(&models.Employee{ID: 3, Name: "Rider", Role: models.RoleDelivery}, nil)

	order, err := svc.Approve(10, 3)

	assert.ErrorIs(t, err, ErrNotPaymentHandler)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Save")
}

func TestApprove_UnknownReviewer(t *testing.T) {
	mockDirectory, mockOrders, _, _, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	order, err := svc.Approve(10, 99)

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Save")
}

func TestApprove_SecondApprovalFailsInvalidState(t *testing.T) {
	mockDirectory, mockOrders, _, _, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(6)).Return(paymentHandler(), nil)
	approved := bankOrderInReview()
	approved.Status = models.OrderPlaced
	approved.PaymentStatus = models.PaymentApproved
	mockOrders.On("FindByID", uint(10)).Return(approved, nil)

	order, err := svc.Approve(10, 6)

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Save")
}

func TestReject_TransitionsToCancelledWithoutAssignment(t *testing.T) {
	mockDirectory, mockOrders, mockAssigner, mockEvents, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(6)).Return(paymentHandler(), nil)
	mockOrders.On("FindByID", uint(10)).Return(bankOrderInReview(), nil)
	mockOrders.On("Save", mock.AnythingOfType("*models.Order")).Return(nil)
	mockEvents.On("PublishOrderEvent", EventPaymentRejected, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Reject(10, 6, "receipt unreadable")

	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)
	assert.Equal(t, models.PaymentRejected, order.PaymentStatus)
	assert.Equal(t, "receipt unreadable", order.RejectionReason)
	assert.Equal(t, uint(6), *order.RejectedBy)
	assert.Nil(t, order.DeliveryEmployeeID)
	mockAssigner.AssertNotCalled(t, "Assign")
}

func TestReject_BlankReasonGetsDefault(t *testing.T) {
	mockDirectory, mockOrders, _, mockEvents, svc := newPaymentServiceFixture()

	mockDirectory.On("FindEmployeeByID", uint(6)).Return(paymentHandler(), nil)
	mockOrders.On("FindByID", uint(10)).Return(bankOrderInReview(), nil)
	mockOrders.On("Save", mock.AnythingOfType("*models.Order")).Return(nil)
	mockEvents.On("PublishOrderEvent", EventPaymentRejected, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.Reject(10, 6, "   ")

	assert.NoError(t, err)
	assert.Equal(t, DefaultRejectionReason, order.RejectionReason)
}

func TestMarkDelivered_Success(t *testing.T) {
	_, mockOrders, _, mockEvents, svc := newPaymentServiceFixture()

	employeeID := uint(3)
	placed := &models.Order{ID: 10, Status: models.OrderPlaced, DeliveryEmployeeID: &employeeID}
	mockOrders.On("FindByID", uint(10)).Return(placed, nil)
	mockOrders.On("Save", mock.AnythingOfType("*models.Order")).Return(nil)
	mockEvents.On("PublishOrderEvent", EventOrderDelivered, mock.AnythingOfType("*models.Order")).Return(nil)

	order, err := svc.MarkDelivered(10, 3)

	assert.NoError(t, err)
	assert.Equal(t, models.OrderDelivered, order.Status)
}

func TestMarkDelivered_WrongEmployee(t *testing.T) {
	_, mockOrders, _, _, svc := newPaymentServiceFixture()

	employeeID := uint(3)
	placed := &models.Order{ID: 10, Status: models.OrderPlaced, DeliveryEmployeeID: &employeeID}
	mockOrders.On("FindByID", uint(10)).Return(placed, nil)

	order, err := svc.MarkDelivered(10, 4)

	assert.ErrorIs(t, err, ErrNotAssigned)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Save")
}

func TestMarkDelivered_UnassignedOrder(t *testing.T) {
	_, mockOrders, _, _, svc := newPaymentServiceFixture()

	placed := &models.Order{ID: 10, Status: models.OrderPlaced}
	mockOrders.On("FindByID", uint(10)).Return(placed, nil)

	order, err := svc.MarkDelivered(10, 3)

	assert.ErrorIs(t, err, ErrNotAssigned)
	assert.Nil(t, order)
}

func TestMarkDelivered_AlreadyDelivered(t *testing.T) {
	_, mockOrders, _, _, svc := newPaymentServiceFixture()

	employeeID := uint(3)
	delivered := &models.Order{ID: 10, Status: models.OrderDelivered, DeliveryEmployeeID: &employeeID}
	mockOrders.On("FindByID", uint(10)).Return(delivered, nil)

	order, err := svc.MarkDelivered(10, 3)

	assert.ErrorIs(t, err, ErrAlreadyDelivered)
	assert.Nil(t, order)
	mockOrders.AssertNotCalled(t, "Save")
}

func TestMarkDelivered_OrderStillInReview(t *testing.T) {
	_, mockOrders, _, _, svc := newPaymentServiceFixture()

	employeeID := uint(3)
	review := bankOrderInReview()
	review.DeliveryEmployeeID = &employeeID
	mockOrders.On("FindByID", uint(10)).Return(review, nil)

	order, err := svc.MarkDelivered(10, 3)

	assert.ErrorIs(t, err, ErrNotDeliverable)
	assert.Nil(t, order)
}
