package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/giveplus/giveplus-api/internal/config"
)

// BulkSender is the external messaging collaborator. The service trusts it
// blindly; delivery guarantees are its problem.
type BulkSender interface {
	SendBulk(ctx context.Context, channel string, recipients int, content string) (sent int, err error)
}

// LogSender stands in for a real SMS/email gateway and only logs the send.
type LogSender struct{}

func (LogSender) SendBulk(_ context.Context, channel string, recipients int, _ string) (int, error) {
	zap.L().Info("bulk send simulated",
		zap.String("channel", channel),
		zap.Int("recipients", recipients),
	)

	return recipients, nil
}

type BulkSendResult struct {
	Sent int             `json:"sent"`
	Cost decimal.Decimal `json:"cost"`
}

var (
	defaultSMSUnitCost   = decimal.RequireFromString("0.05")
	defaultEmailUnitCost = decimal.RequireFromString("0.01")
)

type CommunicationService struct {
	campaignRepo  CampaignRepository
	sender        BulkSender
	smsUnitCost   decimal.Decimal
	emailUnitCost decimal.Decimal
}

func NewCommunicationService(campaignRepo CampaignRepository, sender BulkSender, conf *config.CommunicationsConfig) *CommunicationService {
	smsCost := defaultSMSUnitCost
	emailCost := defaultEmailUnitCost
	if conf != nil {
		if parsed, err := decimal.NewFromString(conf.SMSUnitCost); err == nil {
			smsCost = parsed
		}
		if parsed, err := decimal.NewFromString(conf.EmailUnitCost); err == nil {
			emailCost = parsed
		}
	}

	return &CommunicationService{
		campaignRepo:  campaignRepo,
		sender:        sender,
		smsUnitCost:   smsCost,
		emailUnitCost: emailCost,
	}
}

func (s *CommunicationService) SendSMS(ctx context.Context, campaignIDs []uint, message string) (BulkSendResult, error) {
	return s.send(ctx, "sms", campaignIDs, message, s.smsUnitCost)
}

func (s *CommunicationService) SendEmail(ctx context.Context, campaignIDs []uint, content string) (BulkSendResult, error) {
	return s.send(ctx, "email", campaignIDs, content, s.emailUnitCost)
}

func (s *CommunicationService) send(ctx context.Context, channel string, campaignIDs []uint, content string, unitCost decimal.Decimal) (BulkSendResult, error) {
	recipients := 0
	for _, id := range campaignIDs {
		campaign, err := s.campaignRepo.FindByID(ctx, id)
		if err != nil {
			return BulkSendResult{}, fmt.Errorf("s.campaignRepo.FindByID -> %w", err)
		}
		recipients += campaign.ContactCount
	}

	sent, err := s.sender.SendBulk(ctx, channel, recipients, content)
	if err != nil {
		return BulkSendResult{}, fmt.Errorf("s.sender.SendBulk -> %w", err)
	}

	return BulkSendResult{
		Sent: sent,
		Cost: unitCost.Mul(decimal.NewFromInt(int64(sent))),
	}, nil
}
