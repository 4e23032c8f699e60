package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 40px 20px;
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            background-color: #f8fafc;
            color: #1e293b;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            background: #ffffff;
            border-radius: 24px;
            overflow: hidden;
            box-shadow: 0 10px 15px -3px rgba(0,0,0,0.1);
        }
        .header {
            background: #0f172a;
            padding: 40px;
            text-align: center;
        }
        .header h1 {
            color: #ffffff;
            font-size: 28px;
            letter-spacing: 0.05em;
            text-transform: uppercase;
            margin: 0;
        }
        .content {
            padding: 40px;
        }
        .badge {
            display: inline-block;
            background: #fef3c7;
            color: #b45309;
            padding: 6px 12px;
            border-radius: 99px;
            font-size: 10px;
            font-weight: 800;
            text-transform: uppercase;
            letter-spacing: 0.1em;
            margin-bottom: 20px;
        }
        h2 {
            font-size: 28px;
            font-weight: 900;
            color: #0f172a;
            margin: 0 0 20px 0;
            text-transform: uppercase;
        }
        p {
            font-size: 16px;
            line-height: 1.6;
            color: #475569;
            margin: 0 0 30px 0;
        }
        .card {
            background: #f1f5f9;
            border-radius: 16px;
            padding: 24px;
            margin-bottom: 30px;
        }
        .row {
            display: flex;
            justify-content: space-between;
            padding: 12px 0;
            border-bottom: 1px solid #e2e8f0;
        }
        .label {
            font-size: 11px;
            font-weight: 700;
            color: #94a3b8;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }
        .value {
            font-size: 14px;
            font-weight: 700;
            color: #0f172a;
        }
        .total-row {
            display: flex;
            justify-content: space-between;
            padding-top: 20px;
            margin-top: 20px;
            border-top: 2px solid #e2e8f0;
        }
        .total-label {
            font-size: 14px;
            font-weight: 900;
            color: #0f172a;
            text-transform: uppercase;
        }
        .total-value {
            font-size: 24px;
            font-weight: 900;
            color: #f59e0b;
        }
        .footer {
            padding: 40px;
            text-align: center;
            border-top: 1px solid #f1f5f9;
            font-size: 12px;
            color: #94a3b8;
            line-height: 1.5;
        }
        .footer a {
            color: #f59e0b;
            text-decoration: none;
            font-weight: 700;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Optimrental</h1>
        </div>
        <div class="content">
            <div class="badge">Swiss Premium Fleet</div>
            {{.Content}}
            <div class="card">
                <div class="row">
                    <span class="label">Vehicle</span>
                    <span class="value">{{.Details.VehicleName}}</span>
                </div>
                <div class="row">
                    <span class="label">Date</span>
                    <span class="value">{{.Details.Date}}</span>
                </div>
                <div class="row">
                    <span class="label">Duration</span>
                    <span class="value">{{.Details.Hours}} Hours</span>
                </div>
                <div class="total-row">
                    <span class="total-label">Grand Total</span>
                    <span class="total-value">{{.Details.TotalPrice}} CHF</span>
                </div>
            </div>
            <p style="margin-bottom: 0;">Our team is preparing your vehicle for an exceptional experience. If you have any questions, feel free to reply to this email.</p>
        </div>
        <div class="footer">
            <p>
                &copy; {{.Year}} Optimrental Switzerland. All rights reserved.<br>
                Z&uuml;rich &bull; Basel &bull; Geneva &bull; Bern &bull; Lugano &bull; St. Moritz<br>
                <a href="{{.FrontendURL}}">optimrental.ch</a>
            </p>
        </div>
    </div>
</body>
</html>
`

// BookingReceivedTemplate - sent to the customer right after intake
const BookingReceivedTemplate = `
<h2>Booking Received</h2>
<p>Thank you for choosing Optimrental. We have received your booking request for the <strong>{{.VehicleName}}</strong>. Our team is currently reviewing the availability and will confirm your trip shortly.</p>
`

// BookingConfirmedTemplate - sent when an administrator confirms the booking
const BookingConfirmedTemplate = `
<h2>Booking Confirmed</h2>
<p>Your booking with Optimrental has been <strong>officially confirmed</strong>! We are excited to serve you. Please find your final trip details and pricing below.</p>
`
