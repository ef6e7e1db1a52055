package ui

// User-facing texts. Format verbs are filled by the caller.
const (
	TextSendCode        = "🎬 Kino kodini yuboring"
	TextSubscribe       = "❗ Botdan foydalanish uchun quyidagi kanallarga obuna bo‘ling va «Tekshirish» tugmasini bosing!"
	TextSubscribeFirst  = "❗ Avval obuna bo‘ling"
	TextNotSubscribed   = "❌ Hali obuna bo‘lmagansiz"
	TextSubscriptionOK  = "✅ Obuna tasdiqlandi!\n\n🎬 Kino kodini yuboring"
	TextMediaNotFound   = "❌ Kino topilmadi"
	TextNotUnderstood   = "🤷 Tushunmadim. Kino kodini yuboring yoki /start bosing"
	TextFailure         = "⚠️ Xatolik yuz berdi. Keyinroq urinib ko‘ring."
	TextAdminPanel      = "👑 Admin panel"
	TextCancelled       = "❎ Bekor qilindi"
	TextNothingToCancel = "Bekor qilinadigan amal yo‘q"

	TextAskChannel     = "📢 Kanal username kiriting\nMasalan: @kanalim"
	TextInvalidChannel = "❌ Noto‘g‘ri kanal nomi. Masalan: @kanalim"
	TextChannelAdded   = "✅ Kanal qo‘shildi: %s"
	TextChannelExists  = "❌ Bu kanal mavjud: %s"
	TextChannelRemoved = "🗑 Kanal o‘chirildi: %s"
	TextChannelMissing = "❌ Kanal topilmadi: %s"
	TextChannelsHeader = "📋 Majburiy kanallar:\n"
	TextNoChannels     = "📋 Majburiy kanallar yo‘q"

	TextAskCode     = "🔢 Kino kodini kiriting"
	TextInvalidCode = "❌ Kod bo‘sh bo‘lmasligi kerak"
	TextCodeExists  = "❌ Bu kod band: %s"
	TextAskMedia    = "🎥 Endi «%s» kodi uchun video yoki fayl yuboring"
	TextMediaOnly   = "❗ Faqat video yoki fayl yuboring"
	TextMediaAdded  = "✅ Kino saqlandi: %s"

	TextStats = "📊 Statistika:\n🎬 Kinolar: %d\n📢 Kanallar: %d\n👥 Foydalanuvchilar: %d"
)
