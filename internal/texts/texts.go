package texts

// User-facing Russian copy. The salon runs a single-language bot.
const (
	Welcome = `👋 Добро пожаловать в салон красоты!

💇 Я помогу вам записаться на услугу, подскажу цены и отвечу на вопросы.

Выберите раздел в меню ниже или просто напишите мне сообщение 👇`

	AskContact = `Чтобы записаться на услуги, поделитесь, пожалуйста, номером телефона 📱

Нажмите кнопку ниже 👇`

	AskFullname = `Спасибо! Теперь отправьте фамилию и имя (например: Иванова Анна) ✍️`

	BadContact       = "Пожалуйста, отправьте именно свой контакт через кнопку ниже 👇"
	BadFullname      = "Не получилось разобрать имя. Отправьте в формате: Фамилия Имя"
	RegistrationDone = "Готово! Вы зарегистрированы ✅\n\nТеперь можно записаться на услугу или задать вопрос."

	ShareContactButton = "📱 Поделиться номером"

	BookingButton  = "📅 Записаться"
	PricesButton   = "💰 Цены"
	ContactsButton = "☎️ Контакты"
	FAQButton      = "❓ Вопросы и ответы"

	ChooseService = "Выберите услугу 👇"
	ChooseDate    = "Выберите удобную дату 👇"
	ChooseTime    = "Выберите удобное время 👇"

	// ConfirmBooking is a format string: service title, date, time.
	ConfirmBooking = "Проверьте запись:\n\n💇 %s\n📅 %s\n🕐 %s\n\nПодтверждаете?"

	ConfirmButton       = "✅ Подтвердить"
	CancelBookingButton = "❌ Отменить"

	BookingDone      = "Запись создана ✅ Ждём вас!"
	BookingCancelled = "Запись отменена. Вы всегда можете записаться снова 😊"

	ServicesUnavailable = "Не удалось загрузить список услуг 😔 Попробуйте позже."
	DatesUnavailable    = "Не удалось загрузить свободные даты 😔 Попробуйте позже."
	TimesUnavailable    = "Не удалось загрузить свободное время 😔 Попробуйте позже."
	BookingFailed       = "Не удалось создать запись 😔 Попробуйте позже или напишите нам."
	PricesUnavailable   = "Не удалось загрузить прайс 😔 Попробуйте позже."

	AssistantBusy  = "Отвечаю на предыдущий вопрос ✨. Подождите, пожалуйста... 😊"
	AssistantError = "Произошла ошибка при обработке вашего запроса."

	Contacts = `☎️ Связаться с нами:
+7 (900) 000-00-00

📍 Адрес: уточните у администратора.`

	FAQ = `❓ Частые вопросы:

• Как записаться? Нажмите «Записаться» или напишите мне, я помогу.
• Как отменить запись? Напишите администратору.
• Сколько идёт процедура? Зависит от услуги, спросите меня!`

	BackButton = "🔙 Назад"
)
