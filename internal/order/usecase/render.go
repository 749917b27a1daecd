package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lambriz/order-api/internal/order/entity"
)

// renderOrder produces the operator notification for an order. Rendering is
// total: every field of a decoded order renders without error.
func renderOrder(o entity.Order) entity.Notification {
	totalDisplay := o.TotalDisplay
	if totalDisplay == "" {
		totalDisplay = formatPrice(o.Total) + " ₽"
	}
	if len(o.RequestPriceItems) > 0 {
		totalDisplay += " + Запрос цены"
	}

	c := o.Customer
	lines := []string{
		"Дата: " + o.CreatedAt,
		"Имя: " + c.Name,
		"Телефон: " + c.Phone,
		"Email: " + c.Email,
		"Telegram ID: " + c.TelegramUserID,
		"Способ связи: " + c.ContactMethod,
		"Комментарий: " + c.Comment,
		"",
		"Товары с ценой:",
	}
	if len(o.PricedItems) > 0 {
		for _, it := range o.PricedItems {
			lines = append(lines, "- "+pricedItemLine(it))
		}
	} else {
		lines = append(lines, "- Нет")
	}
	lines = append(lines, "", "Запрос цены:")
	if len(o.RequestPriceItems) > 0 {
		for _, it := range o.RequestPriceItems {
			lines = append(lines, "- "+requestItemLine(it))
		}
	} else {
		lines = append(lines, "- Нет")
	}
	lines = append(lines, "", "Итого: "+totalDisplay)

	var html strings.Builder
	html.WriteString("<h2>Новая заявка с Mini App</h2>")
	html.WriteString("<p><b>Дата:</b> " + o.CreatedAt + "</p>")
	html.WriteString("<h3>Контактные данные</h3>")
	html.WriteString("<p><b>Имя:</b> " + c.Name + "<br>")
	html.WriteString("<b>Телефон:</b> " + c.Phone + "<br>")
	html.WriteString("<b>Email:</b> " + c.Email + "<br>")
	html.WriteString("<b>Telegram ID:</b> " + c.TelegramUserID + "<br>")
	html.WriteString("<b>Способ связи:</b> " + c.ContactMethod + "<br>")
	html.WriteString("<b>Комментарий:</b> " + c.Comment + "</p>")
	html.WriteString("<h3>Товары с ценой</h3><ul>")
	if len(o.PricedItems) > 0 {
		for _, it := range o.PricedItems {
			html.WriteString("<li>" + pricedItemLine(it) + "</li>")
		}
	} else {
		html.WriteString("<li>Нет</li>")
	}
	html.WriteString("</ul><h3>Запрос цены</h3><ul>")
	if len(o.RequestPriceItems) > 0 {
		for _, it := range o.RequestPriceItems {
			html.WriteString("<li>" + requestItemLine(it) + "</li>")
		}
	} else {
		html.WriteString("<li>Нет</li>")
	}
	html.WriteString("</ul>")
	html.WriteString("<p><b>Итого:</b> " + totalDisplay + "</p>")

	return entity.Notification{
		Subject:  "Новая заявка №" + o.ID,
		TextBody: strings.Join(lines, "\n") + "\n",
		HTMLBody: html.String(),
	}
}

// renderFeedback produces the operator notification for a feedback message.
func renderFeedback(f entity.Feedback) entity.Notification {
	c := f.Customer
	text := "Дата: " + f.CreatedAt + "\n" +
		"Имя: " + c.Name + "\n" +
		"Телефон: " + c.Phone + "\n" +
		"Email: " + c.Email + "\n" +
		"Telegram ID: " + c.TelegramUserID + "\n" +
		"Способ связи: " + c.ContactMethod + "\n" +
		"Комментарий: " + f.Message + "\n"

	html := "<h2>Обратная связь</h2>" +
		"<p><b>Дата:</b> " + f.CreatedAt + "</p>" +
		"<p><b>Имя:</b> " + c.Name + "<br>" +
		"<b>Телефон:</b> " + c.Phone + "<br>" +
		"<b>Email:</b> " + c.Email + "<br>" +
		"<b>Telegram ID:</b> " + c.TelegramUserID + "<br>" +
		"<b>Способ связи:</b> " + c.ContactMethod + "<br>" +
		"<b>Комментарий:</b> " + f.Message + "</p>"

	return entity.Notification{
		Subject:  "Обратная связь",
		TextBody: text,
		HTMLBody: html,
	}
}

func pricedItemLine(it entity.LineItem) string {
	return fmt.Sprintf("%s, арт. %s, %s шт × %s ₽", it.Title, it.SKU, it.Qty, formatPrice(it.Price))
}

func requestItemLine(it entity.LineItem) string {
	return fmt.Sprintf("%s, арт. %s, %s шт", it.Title, it.SKU, it.Qty)
}

// formatPrice renders a rouble amount with space-separated thousands and no
// decimals, e.g. 1234567.89 becomes "1 234 568". NaN and infinities render
// as "0".
func formatPrice(num float64) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return "0"
	}

	s := strconv.FormatFloat(math.Round(num), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
