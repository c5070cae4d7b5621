package service

import (
	"fmt"
	"strings"

	"smarttech/config"
	"smarttech/models"
	"smarttech/pkg/log"
	"smarttech/pkg/mail"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// INotifier 订单邮件通知，发送失败只记日志不影响主流程
type INotifier interface {
	OrderConfirmed(order *models.Order)
	StatusChanged(order *models.Order)
	Wait()
}

type Notifier struct {
	Mailer   mail.Mailer
	ShopName string

	wg conc.WaitGroup
}

var _ INotifier = (*Notifier)(nil)

func NewNotifier(mailer mail.Mailer, conf *config.Config) *Notifier {
	return &Notifier{
		Mailer:   mailer,
		ShopName: conf.App.ShopName,
	}
}

// 只有这些状态变更才通知用户
var notifiableStatuses = map[string]bool{
	models.OrderStatusPaid:      true,
	models.OrderStatusShipped:   true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

func (n *Notifier) OrderConfirmed(order *models.Order) {
	subject := fmt.Sprintf("%s 订单确认 %s", n.ShopName, order.OrderSn)
	body := n.buildSummary(order)
	n.send(order.UserEmail, subject, body, order.OrderSn)
}

func (n *Notifier) StatusChanged(order *models.Order) {
	if !notifiableStatuses[order.Status] {
		return
	}
	subject := fmt.Sprintf("%s 订单 %s 状态更新: %s", n.ShopName, order.OrderSn, order.Status)
	body := n.buildSummary(order)
	n.send(order.UserEmail, subject, body, order.OrderSn)
}

// Wait 进程退出前冲刷未发送完的邮件
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) send(to, subject, body, orderSn string) {
	n.wg.Go(func() {
		if err := n.Mailer.Send(to, subject, body); err != nil {
			log.L.Error("send mail failed",
				zap.String("order_sn", orderSn),
				zap.String("to", to),
				zap.Error(err))
		}
	})
}

func (n *Notifier) buildSummary(order *models.Order) string {
	var b strings.Builder
	b.WriteString("<h3>订单 " + order.OrderSn + "</h3>")
	b.WriteString("<p>状态: " + order.Status + "，支付方式: " + order.PaymentMethod + "</p>")
	b.WriteString("<table border='1' cellpadding='4'><tr><th>商品</th><th>规格</th><th>单价</th><th>数量</th></tr>")
	for i := range order.Products {
		p := &order.Products[i]
		b.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>",
			p.Title, p.SpecName, formatPaise(p.UnitPrice), p.Qty))
	}
	b.WriteString("</table>")
	b.WriteString(fmt.Sprintf("<p>小计: %s<br>GST: %s<br>运费: %s<br><b>合计: %s</b></p>",
		formatPaise(order.Subtotal), formatPaise(order.GstAmount),
		formatPaise(order.DeliveryCharge), formatPaise(order.TotalAmount)))
	b.WriteString("<p>收货地址: " + order.Address + "</p>")
	return b.String()
}

func formatPaise(v int64) string {
	return fmt.Sprintf("₹%d.%02d", v/100, v%100)
}
